package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/repository"
)

var userColumns = []string{
	"u.id",
	"u.name",
	"u.github_nickname",
	"u.email",
	"u.avatar",
	"u.is_vehikl_member",
	"COALESCE(u.calendar_token_hash, '') AS calendar_token_hash",
	"u.created_at",
	"u.updated_at",
}

type userRow struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	GithubNickname    string    `db:"github_nickname"`
	Email             string    `db:"email"`
	Avatar            string    `db:"avatar"`
	IsVehiklMember    bool      `db:"is_vehikl_member"`
	CalendarTokenHash string    `db:"calendar_token_hash"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r userRow) toEntity() entity.User {
	return entity.User{
		ID:                r.ID,
		Name:              r.Name,
		GithubNickname:    r.GithubNickname,
		Email:             r.Email,
		AvatarURL:         r.Avatar,
		IsVehiklMember:    r.IsVehiklMember,
		CalendarTokenHash: r.CalendarTokenHash,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) UpsertByGithub(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, github_nickname, email, avatar, is_vehikl_member)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (github_nickname) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    avatar = EXCLUDED.avatar,
		    is_vehikl_member = EXCLUDED.is_vehikl_member,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, u.Name, u.GithubNickname, u.Email, u.AvatarURL, u.IsVehiklMember)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	sql, args, err := psql.Select(userColumns...).
		From("users u").
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u := row.toEntity()
	return &u, nil
}

func (r *UserRepository) SetCalendarTokenHash(ctx context.Context, id int64, hash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET calendar_token_hash = $1, updated_at = NOW()
		WHERE id = $2
	`, hash, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// usersByID loads the given users keyed by id. Unknown ids are skipped.
func usersByID(ctx context.Context, db DBTX, ids []int64) (map[int64]entity.User, error) {
	out := make(map[int64]entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	sql, args, err := psql.Select(userColumns...).
		From("users u").
		Where(sq.Eq{"u.id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, db, &rows, sql, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.toEntity()
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
