package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

// DigestMessage lists the day's sessions in start order. Private sessions are left out since
// the digest goes to a shared channel. Empty when nothing public is scheduled.
func DigestMessage(day calendar.DateTime, sessions []*entity.GrowthSession) string {
	var b strings.Builder
	for _, s := range sessions {
		if s == nil || !s.IsPublic {
			continue
		}
		if b.Len() == 0 {
			fmt.Fprintf(&b, "Growth sessions for %s\n", day.Time().Format("Monday, Jan 2"))
		}
		fmt.Fprintf(&b, "- %s - %s **%s** at %s", s.StartTime, s.EndTime, s.Title, s.Location)
		if s.AttendeeLimit != nil {
			fmt.Fprintf(&b, " (%d/%d)", len(s.Attendees), *s.AttendeeLimit)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// PostDigest posts the digest for day to channel. Nothing is posted on an empty day.
func PostDigest(ctx context.Context, p Poster, channel string, day calendar.DateTime, sessions []*entity.GrowthSession) (bool, error) {
	msg := DigestMessage(day, sessions)
	if msg == "" || channel == "" {
		return false, nil
	}
	if err := p.Post(ctx, channel, msg); err != nil {
		return false, fmt.Errorf("post digest: %w", err)
	}
	return true, nil
}
