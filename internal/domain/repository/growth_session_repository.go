package repository

import (
	"context"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

// GrowthSessionFilter narrows List. From and To are inclusive calendar days; zero values
// leave that side open. ParticipantID, when set, keeps sessions the user owns or attends.
type GrowthSessionFilter struct {
	From          calendar.DateTime
	To            calendar.DateTime
	PublicOnly    bool
	ParticipantID int64
}

// GrowthSessionRepository persists growth sessions together with their attendee pivot.
// Reads always load owner, attendees (join order) and comments (creation order).
type GrowthSessionRepository interface {
	Create(ctx context.Context, s *entity.GrowthSession) error
	GetByID(ctx context.Context, id int64) (*entity.GrowthSession, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.GrowthSession, error)
	List(ctx context.Context, f GrowthSessionFilter) ([]*entity.GrowthSession, error)
	Update(ctx context.Context, s *entity.GrowthSession) error
	Delete(ctx context.Context, id int64) error

	// AddAttendee returns ErrAttendeeLimitReached or ErrAlreadyAttending when the pivot row
	// cannot be inserted.
	AddAttendee(ctx context.Context, sessionID, userID int64) error
	// RemoveAttendee returns ErrNotFound when the user was not attending.
	RemoveAttendee(ctx context.Context, sessionID, userID int64) error
}
