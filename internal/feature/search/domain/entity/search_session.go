// Package entity defines the domain entities for the search feature.
package entity

import "time"

// SearchSession carries the per-visitor lookup state across requests.
// It replaces the original cookie-embedded session values with a
// server-side record keyed by an opaque ID.
type SearchSession struct {
	ID         string    // Opaque session ID (64-character hex string)
	UserID     uint      // Authenticated user ID, 0 while anonymous
	LastTicker string    // Most recently looked-up ticker, "" before the first lookup
	CreatedAt  time.Time // Session creation time
	ExpiresAt  time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *SearchSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
