// Package policy decides which session card actions a viewer may take.
package policy

import "github.com/oksasatya/growth-sessions/internal/domain/calendar"

// Session is what the rules need to know about a growth session. Both the persisted entity
// and the client-side wrapper satisfy it.
type Session interface {
	IsOwnedBy(userID int64) bool
	HasAttendee(userID int64) bool
	Day() calendar.DateTime
}

// Controls lists the card buttons a viewer gets for one session.
type Controls struct {
	CanJoin   bool `json:"can_join"`
	CanLeave  bool `json:"can_leave"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// IsPast is true once now's calendar day is strictly after the session's day. Any time on the
// session's own day still counts as upcoming.
func IsPast(s Session, now calendar.DateTime) bool {
	return now.IsAfterDay(s.Day())
}

// Evaluate derives the controls for viewerID (nil for guests) at now.
func Evaluate(s Session, viewerID *int64, now calendar.DateTime) Controls {
	if viewerID == nil || IsPast(s, now) {
		return Controls{}
	}
	owner := s.IsOwnedBy(*viewerID)
	attendee := s.HasAttendee(*viewerID)
	return Controls{
		CanJoin:   !owner && !attendee,
		CanLeave:  attendee,
		CanEdit:   owner,
		CanDelete: owner,
	}
}
