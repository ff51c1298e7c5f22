package client

import (
	"fmt"
	"time"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/policy"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

// GrowthSession wraps a session payload with the helpers the card rules need.
type GrowthSession struct {
	api.GrowthSession
	day calendar.DateTime
}

// NewGrowthSession parses the payload's date in loc (UTC when nil). An unparsable date
// leaves Day zero, which always counts as past.
func NewGrowthSession(p api.GrowthSession, loc *time.Location) *GrowthSession {
	d, _ := calendar.ParseByDate(p.Date, loc)
	return &GrowthSession{GrowthSession: p, day: d}
}

func (s *GrowthSession) IsOwnedBy(userID int64) bool {
	return s.Owner.ID == userID
}

func (s *GrowthSession) HasAttendee(userID int64) bool {
	for _, a := range s.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

func (s *GrowthSession) Day() calendar.DateTime { return s.day }

// Seats renders "2/4" for limited sessions and "2" otherwise.
func (s *GrowthSession) Seats() string {
	if s.AttendeeLimit != nil {
		return fmt.Sprintf("%d/%d", len(s.Attendees), *s.AttendeeLimit)
	}
	return fmt.Sprintf("%d", len(s.Attendees))
}

var _ policy.Session = (*GrowthSession)(nil)

// WeekGrowthSessions is the week view as the client sees it.
type WeekGrowthSessions = calendar.Week[*GrowthSession]

// NewWeekGrowthSessions wraps each day's payloads keeping the server's day and item order.
func NewWeekGrowthSessions(days []api.Day, loc *time.Location) WeekGrowthSessions {
	dates := make([]calendar.DateTime, 0, len(days))
	byDate := make(map[string][]*GrowthSession, len(days))
	for _, d := range days {
		date, err := calendar.ParseByDate(d.Date, loc)
		if err != nil {
			continue
		}
		dates = append(dates, date)
		key := date.ToDateString()
		if _, seen := byDate[key]; seen {
			continue
		}
		wrapped := make([]*GrowthSession, 0, len(d.GrowthSessions))
		for _, p := range d.GrowthSessions {
			wrapped = append(wrapped, NewGrowthSession(p, loc))
		}
		byDate[key] = wrapped
	}
	return calendar.NewWeek(dates, byDate)
}
