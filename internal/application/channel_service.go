package application

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	repo "github.com/oksasatya/growth-sessions/internal/domain/repository"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

// ChannelFetcher lists the guild's voice channels.
type ChannelFetcher interface {
	VoiceChannels(ctx context.Context) ([]entity.DiscordChannel, error)
}

type ChannelService struct {
	Repo     repo.DiscordChannelRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewChannelService(channels repo.DiscordChannelRepository, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *ChannelService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ChannelService{Repo: channels, Redis: rdb, CacheTTL: ttl, Logger: logger}
}

// List serves the mirrored channel list, from Redis when cached. A cache failure falls back
// to Postgres.
func (s *ChannelService) List(ctx context.Context) ([]entity.DiscordChannel, error) {
	if s.Redis != nil {
		var cached []entity.DiscordChannel
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, helpers.KeyDiscordChannels, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("discord channel cache read failed")
		}
		if ok {
			return cached, nil
		}
	}
	channels, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list discord channels: %w", err)
	}
	if channels == nil {
		channels = []entity.DiscordChannel{}
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, helpers.KeyDiscordChannels, channels, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("discord channel cache write failed")
		}
	}
	return channels, nil
}

// Sync replaces the stored list with what the guild currently has and drops the cache.
func (s *ChannelService) Sync(ctx context.Context, fetcher ChannelFetcher) (int, error) {
	channels, err := fetcher.VoiceChannels(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch discord channels: %w", err)
	}
	if err := s.Repo.ReplaceAll(ctx, channels); err != nil {
		return 0, fmt.Errorf("store discord channels: %w", err)
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, helpers.KeyDiscordChannels); err != nil {
			helpers.LogWarn(s.Logger, "discord channel cache drop failed", err, logrus.Fields{"count": len(channels)})
		}
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(channels)).Info("discord channels synced")
	}
	return len(channels), nil
}
