package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/repository"
)

var sessionColumns = []string{
	"m.id",
	"m.owner_id",
	"m.title",
	"m.topic",
	"m.location",
	"to_char(m.date, 'YYYY-MM-DD') AS date",
	"m.start_time::text AS start_time",
	"m.end_time::text AS end_time",
	"m.is_public",
	"m.attendee_limit",
	"m.discord_channel_id",
	"m.created_at",
	"m.updated_at",
}

type sessionRow struct {
	ID               int64     `db:"id"`
	OwnerID          int64     `db:"owner_id"`
	Title            string    `db:"title"`
	Topic            string    `db:"topic"`
	Location         string    `db:"location"`
	Date             string    `db:"date"`
	StartTime        string    `db:"start_time"`
	EndTime          string    `db:"end_time"`
	IsPublic         bool      `db:"is_public"`
	AttendeeLimit    *int      `db:"attendee_limit"`
	DiscordChannelID *string   `db:"discord_channel_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type attendeeRow struct {
	SocialMobID int64 `db:"social_mob_id"`
	UserID      int64 `db:"user_id"`
}

type commentRow struct {
	ID          int64     `db:"id"`
	SocialMobID int64     `db:"social_mob_id"`
	UserID      int64     `db:"user_id"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r commentRow) toEntity() entity.Comment {
	return entity.Comment{
		ID:              r.ID,
		GrowthSessionID: r.SocialMobID,
		UserID:          r.UserID,
		Content:         r.Content,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// GrowthSessionRepository stores sessions in social_mobs and attendees in social_mob_user.
// Dates are read back as calendar days in loc.
type GrowthSessionRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

func NewGrowthSessionRepository(pool *pgxpool.Pool, loc *time.Location) *GrowthSessionRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &GrowthSessionRepository{pool: pool, loc: loc}
}

func (r *GrowthSessionRepository) Create(ctx context.Context, s *entity.GrowthSession) error {
	sql, args, err := psql.Insert("social_mobs").
		Columns("owner_id", "title", "topic", "location", "date", "start_time", "end_time",
			"is_public", "attendee_limit", "discord_channel_id").
		Values(s.OwnerID, s.Title, s.Topic, s.Location, s.Date.ToDateString(), s.StartTime.SQL(),
			s.EndTime.SQL(), s.IsPublic, s.AttendeeLimit, s.DiscordChannelID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *GrowthSessionRepository) GetByID(ctx context.Context, id int64) (*entity.GrowthSession, error) {
	sessions, err := r.GetByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, repository.ErrNotFound
	}
	return sessions[0], nil
}

func (r *GrowthSessionRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entity.GrowthSession, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := psql.Select(sessionColumns...).
		From("social_mobs m").
		Where(sq.Eq{"m.id": ids}).
		OrderBy("m.date", "m.start_time", "m.id")
	return r.query(ctx, q)
}

func (r *GrowthSessionRepository) List(ctx context.Context, f repository.GrowthSessionFilter) ([]*entity.GrowthSession, error) {
	q := psql.Select(sessionColumns...).From("social_mobs m")
	if !f.From.IsZero() {
		q = q.Where(sq.GtOrEq{"m.date": f.From.ToDateString()})
	}
	if !f.To.IsZero() {
		q = q.Where(sq.LtOrEq{"m.date": f.To.ToDateString()})
	}
	if f.PublicOnly {
		q = q.Where(sq.Eq{"m.is_public": true})
	}
	if f.ParticipantID != 0 {
		q = q.Where(sq.Or{
			sq.Eq{"m.owner_id": f.ParticipantID},
			sq.Expr("EXISTS (SELECT 1 FROM social_mob_user su WHERE su.social_mob_id = m.id AND su.user_id = ?)", f.ParticipantID),
		})
	}
	return r.query(ctx, q.OrderBy("m.date", "m.start_time", "m.id"))
}

func (r *GrowthSessionRepository) Update(ctx context.Context, s *entity.GrowthSession) error {
	sql, args, err := psql.Update("social_mobs").
		SetMap(map[string]any{
			"title":              s.Title,
			"topic":              s.Topic,
			"location":           s.Location,
			"date":               s.Date.ToDateString(),
			"start_time":         s.StartTime.SQL(),
			"end_time":           s.EndTime.SQL(),
			"is_public":          s.IsPublic,
			"attendee_limit":     s.AttendeeLimit,
			"discord_channel_id": s.DiscordChannelID,
			"updated_at":         sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *GrowthSessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM social_mobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddAttendee locks the session row so concurrent joins cannot overshoot the limit.
func (r *GrowthSessionRepository) AddAttendee(ctx context.Context, sessionID, userID int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var (
			ownerID int64
			limit   *int
		)
		err := tx.QueryRow(ctx, `SELECT owner_id, attendee_limit FROM social_mobs WHERE id = $1 FOR UPDATE`, sessionID).
			Scan(&ownerID, &limit)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repository.ErrNotFound
			}
			return err
		}
		if ownerID == userID {
			return repository.ErrAlreadyAttending
		}

		if limit != nil {
			var count int
			if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM social_mob_user WHERE social_mob_id = $1`, sessionID).Scan(&count); err != nil {
				return err
			}
			if count >= *limit {
				return repository.ErrAttendeeLimitReached
			}
		}

		res, err := tx.Exec(ctx, `
			INSERT INTO social_mob_user (social_mob_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (social_mob_id, user_id) DO NOTHING
		`, sessionID, userID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrAlreadyAttending
		}
		return nil
	})
}

func (r *GrowthSessionRepository) RemoveAttendee(ctx context.Context, sessionID, userID int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM social_mob_user WHERE social_mob_id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GrowthSessionRepository) query(ctx context.Context, q sq.SelectBuilder) ([]*entity.GrowthSession, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []sessionRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, err
	}
	return r.hydrate(ctx, rows)
}

// hydrate attaches owners, attendees in join order and comments in creation order.
func (r *GrowthSessionRepository) hydrate(ctx context.Context, rows []sessionRow) ([]*entity.GrowthSession, error) {
	if len(rows) == 0 {
		return []*entity.GrowthSession{}, nil
	}

	ids := make([]int64, 0, len(rows))
	userIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
		userIDs = append(userIDs, row.OwnerID)
	}

	attendeeSQL, args, err := psql.Select("su.social_mob_id", "su.user_id").
		From("social_mob_user su").
		Where(sq.Eq{"su.social_mob_id": ids}).
		OrderBy("su.created_at", "su.user_id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var attendees []attendeeRow
	if err := pgxscan.Select(ctx, r.pool, &attendees, attendeeSQL, args...); err != nil {
		return nil, fmt.Errorf("load attendees: %w", err)
	}
	for _, a := range attendees {
		userIDs = append(userIDs, a.UserID)
	}

	commentSQL, args, err := psql.Select("c.id", "c.social_mob_id", "c.user_id", "c.content", "c.created_at", "c.updated_at").
		From("comments c").
		Where(sq.Eq{"c.social_mob_id": ids}).
		OrderBy("c.created_at", "c.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var comments []commentRow
	if err := pgxscan.Select(ctx, r.pool, &comments, commentSQL, args...); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}

	users, err := usersByID(ctx, r.pool, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	out := make([]*entity.GrowthSession, 0, len(rows))
	byID := make(map[int64]*entity.GrowthSession, len(rows))
	for _, row := range rows {
		s, err := r.toEntity(row)
		if err != nil {
			return nil, err
		}
		if owner, ok := users[row.OwnerID]; ok {
			s.Owner = &owner
		}
		out = append(out, s)
		byID[s.ID] = s
	}
	for _, a := range attendees {
		s, ok := byID[a.SocialMobID]
		if !ok {
			continue
		}
		if u, ok := users[a.UserID]; ok {
			s.Attendees = append(s.Attendees, u)
		}
	}
	for _, c := range comments {
		s, ok := byID[c.SocialMobID]
		if !ok {
			continue
		}
		comment := c.toEntity()
		if author, ok := users[c.UserID]; ok {
			comment.User = &author
		}
		s.Comments = append(s.Comments, comment)
	}
	return out, nil
}

func (r *GrowthSessionRepository) toEntity(row sessionRow) (*entity.GrowthSession, error) {
	date, err := calendar.ParseByDate(row.Date, r.loc)
	if err != nil {
		return nil, err
	}
	start, err := calendar.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := calendar.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return nil, err
	}
	return &entity.GrowthSession{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		Title:            row.Title,
		Topic:            row.Topic,
		Location:         row.Location,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		IsPublic:         row.IsPublic,
		AttendeeLimit:    row.AttendeeLimit,
		DiscordChannelID: row.DiscordChannelID,
		Attendees:        []entity.User{},
		Comments:         []entity.Comment{},
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

var _ repository.GrowthSessionRepository = (*GrowthSessionRepository)(nil)
