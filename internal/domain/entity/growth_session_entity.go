package entity

import (
	"time"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
)

// GrowthSession is the aggregate root: a scheduled group meeting. The owner is never part
// of Attendees; Attendees are kept in join order.
type GrowthSession struct {
	ID               int64
	OwnerID          int64
	Owner            *User
	Title            string
	Topic            string
	Location         string
	Date             calendar.DateTime
	StartTime        calendar.TimeOfDay
	EndTime          calendar.TimeOfDay
	IsPublic         bool
	AttendeeLimit    *int
	DiscordChannelID *string
	Attendees        []User
	Comments         []Comment
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *GrowthSession) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

func (s *GrowthSession) HasAttendee(userID int64) bool {
	for _, a := range s.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

func (s *GrowthSession) Day() calendar.DateTime {
	return s.Date
}

// IsFull reports whether a limit is set and reached.
func (s *GrowthSession) IsFull() bool {
	return s.AttendeeLimit != nil && len(s.Attendees) >= *s.AttendeeLimit
}

// Clone copies the session deep enough that later edits to the original do not leak into
// event snapshots.
func (s *GrowthSession) Clone() *GrowthSession {
	if s == nil {
		return nil
	}
	c := *s
	if s.Owner != nil {
		owner := *s.Owner
		c.Owner = &owner
	}
	if s.AttendeeLimit != nil {
		limit := *s.AttendeeLimit
		c.AttendeeLimit = &limit
	}
	if s.DiscordChannelID != nil {
		ch := *s.DiscordChannelID
		c.DiscordChannelID = &ch
	}
	c.Attendees = append([]User(nil), s.Attendees...)
	c.Comments = append([]Comment(nil), s.Comments...)
	return &c
}
