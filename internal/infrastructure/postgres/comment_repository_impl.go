package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (social_mob_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.GrowthSessionID, c.UserID, c.Content)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	sql, args, err := psql.Select("c.id", "c.social_mob_id", "c.user_id", "c.content", "c.created_at", "c.updated_at").
		From("comments c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var row commentRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	c := row.toEntity()
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
