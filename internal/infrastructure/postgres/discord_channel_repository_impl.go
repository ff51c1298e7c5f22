package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/repository"
)

type DiscordChannelRepository struct {
	pool *pgxpool.Pool
}

func NewDiscordChannelRepository(pool *pgxpool.Pool) *DiscordChannelRepository {
	return &DiscordChannelRepository{pool: pool}
}

func (r *DiscordChannelRepository) List(ctx context.Context) ([]entity.DiscordChannel, error) {
	sql, args, err := psql.Select("id", "name").
		From("discord_channels").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	channels := []entity.DiscordChannel{}
	if err := pgxscan.Select(ctx, r.pool, &channels, sql, args...); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *DiscordChannelRepository) ReplaceAll(ctx context.Context, channels []entity.DiscordChannel) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM discord_channels`); err != nil {
			return err
		}
		if len(channels) == 0 {
			return nil
		}
		q := psql.Insert("discord_channels").Columns("id", "name")
		for _, ch := range channels {
			q = q.Values(ch.ID, ch.Name)
		}
		sql, args, err := q.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

var _ repository.DiscordChannelRepository = (*DiscordChannelRepository)(nil)
