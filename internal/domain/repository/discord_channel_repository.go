package repository

import (
	"context"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

type DiscordChannelRepository interface {
	List(ctx context.Context) ([]entity.DiscordChannel, error)
	// ReplaceAll swaps the stored list for channels in one transaction.
	ReplaceAll(ctx context.Context, channels []entity.DiscordChannel) error
}
