// Package adapters provides repository implementations for the search feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_insight/internal/feature/search/domain/entity"
	"stock_insight/internal/feature/search/usecase"
)

// sessionGorm is the SQL implementation of the SessionRepository interface,
// used as a fallback when Redis is unavailable.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionGorm implements SessionRepository.
var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm creates a new instance of sessionGorm.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Save inserts the session or overwrites an existing row with the same ID.
func (r *sessionGorm) Save(ctx context.Context, session *entity.SearchSession) error {
	model := SearchSessionModelFromEntity(session)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// FindByID retrieves a session by its ID. Expired rows are treated as absent.
func (r *sessionGorm) FindByID(ctx context.Context, id string) (*entity.SearchSession, error) {
	var model SearchSessionModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete removes a session row. Missing rows are ignored.
func (r *sessionGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SearchSessionModel{}, "id = ?", id).Error
}

// DeleteExpired removes all expired sessions from storage.
// Returns the number of deleted sessions.
func (r *sessionGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&SearchSessionModel{})
	return result.RowsAffected, result.Error
}
