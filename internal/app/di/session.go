package di

import (
	searchadapters "stock_insight/internal/feature/search/adapters"
	"stock_insight/internal/feature/search/usecase"
	"stock_insight/internal/platform/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to SQL.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return searchadapters.NewSessionGorm(db)
}
