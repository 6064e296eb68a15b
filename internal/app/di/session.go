package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "github.com/Mark1william11/FlavorFind/internal/feature/auth/adapters"
	"github.com/Mark1william11/FlavorFind/internal/feature/auth/usecase"
	"github.com/Mark1william11/FlavorFind/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(db)
}
