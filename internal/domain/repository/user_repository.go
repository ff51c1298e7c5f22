package repository

import (
	"context"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// UpsertByGithub inserts or refreshes a user keyed by GitHub nickname and fills in ID and timestamps.
	UpsertByGithub(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	SetCalendarTokenHash(ctx context.Context, id int64, hash string) error
}
