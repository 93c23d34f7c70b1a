package adapters

import (
	"time"

	"stock_insight/internal/feature/search/domain/entity"
)

// SearchSessionModel is the GORM model for the search_sessions table.
// It is the SQL fallback used when Redis is unavailable.
type SearchSessionModel struct {
	ID         string    `gorm:"primaryKey;size:64"`
	UserID     uint      `gorm:"index"`
	LastTicker string    `gorm:"size:20"`
	CreatedAt  time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SearchSessionModel) TableName() string {
	return "search_sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SearchSessionModel) ToEntity() *entity.SearchSession {
	return &entity.SearchSession{
		ID:         m.ID,
		UserID:     m.UserID,
		LastTicker: m.LastTicker,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
	}
}

// SearchSessionModelFromEntity converts a domain entity to a GORM model.
func SearchSessionModelFromEntity(s *entity.SearchSession) *SearchSessionModel {
	return &SearchSessionModel{
		ID:         s.ID,
		UserID:     s.UserID,
		LastTicker: s.LastTicker,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
}
