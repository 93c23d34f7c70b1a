// Package entity defines the domain models for the history feature.
package entity

import (
	authentity "stock_insight/internal/feature/auth/domain/entity"
	quoteentity "stock_insight/internal/feature/quote/domain/entity"
)

// HistoryEntry is a persisted snapshot associated with a user and keyed by
// company name. At most one entry exists per (user, company name); a new
// lookup of the same company replaces the stored row.
type HistoryEntry struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_company"`
	// User is the owning account. The foreign key cascades on delete so a
	// removed user takes their history with them.
	User           authentity.User `gorm:"constraint:OnDelete:CASCADE"`
	Ticker         string          `gorm:"size:20;not null"`
	LongName       string          `gorm:"size:255;not null;uniqueIndex:idx_user_company"`
	Industry       string          `gorm:"size:255;not null"`
	ForwardPE      float64
	EarningsGrowth float64
	ProfitMargins  float64
	MarketCap      float64
	BookValue      float64
	PriceToBook    float64
	QuickRatio     float64
	CurrentRatio   float64
	FreeCashflow   *float64
}

// TableName returns the table name for GORM.
func (HistoryEntry) TableName() string {
	return "searches"
}

// FromSnapshot builds a history entry for the given user from a normalized
// snapshot.
func FromSnapshot(userID uint, snap *quoteentity.Snapshot) *HistoryEntry {
	fcf := snap.FreeCashflow
	return &HistoryEntry{
		UserID:         userID,
		Ticker:         snap.Ticker,
		LongName:       snap.LongName,
		Industry:       snap.Industry,
		ForwardPE:      snap.ForwardPE,
		EarningsGrowth: snap.EarningsGrowth,
		ProfitMargins:  snap.ProfitMargins,
		MarketCap:      snap.MarketCap,
		BookValue:      snap.BookValue,
		PriceToBook:    snap.PriceToBook,
		QuickRatio:     snap.QuickRatio,
		CurrentRatio:   snap.CurrentRatio,
		FreeCashflow:   &fcf,
	}
}
