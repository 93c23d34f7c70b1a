package usecase

import (
	"context"

	"stock_insight/internal/feature/search/domain/entity"
)

// SessionRepository abstracts the persistence layer for search sessions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Save persists a session, replacing any existing record with the same ID.
	Save(ctx context.Context, session *entity.SearchSession) error

	// FindByID retrieves a session by its ID.
	// It returns ErrSessionNotFound if the session does not exist.
	FindByID(ctx context.Context, id string) (*entity.SearchSession, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
