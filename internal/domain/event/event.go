package event

import (
	"time"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

type Kind string

const (
	SessionCreated         Kind = "growth_session.created"
	SessionAttendeeChanged Kind = "growth_session.attendee_changed"
	SessionUpdated         Kind = "growth_session.updated"
	SessionDeleted         Kind = "growth_session.deleted"
)

// Kinds lists every event the write path fires.
var Kinds = []Kind{SessionCreated, SessionAttendeeChanged, SessionUpdated, SessionDeleted}

type AttendeeChange string

const (
	Joined AttendeeChange = "joined"
	Left   AttendeeChange = "left"
)

// Event carries a snapshot of the session as it was right after the write (right before it
// for deletes). Change is only set for SessionAttendeeChanged.
type Event struct {
	Kind       Kind
	Session    *entity.GrowthSession
	Actor      *entity.User
	Change     AttendeeChange
	OccurredAt time.Time
}
