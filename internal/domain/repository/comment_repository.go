package repository

import (
	"context"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	Delete(ctx context.Context, id int64) error
}
