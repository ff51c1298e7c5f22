// Package notification turns growth session events into chat posts and attendee emails.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/event"
)

type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Notification is the self-contained payload put on the queue. It never needs a database
// lookup to be delivered.
type Notification struct {
	Kind          event.Kind           `json:"kind"`
	SessionID     int64                `json:"session_id"`
	Title         string               `json:"title"`
	Topic         string               `json:"topic"`
	Location      string               `json:"location"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	OwnerName     string               `json:"owner_name"`
	ActorName     string               `json:"actor_name,omitempty"`
	Change        event.AttendeeChange `json:"change,omitempty"`
	ChannelID     string               `json:"channel_id,omitempty"`
	AttendeeCount int                  `json:"attendee_count"`
	AttendeeLimit *int                 `json:"attendee_limit,omitempty"`
	Attendees     []Recipient          `json:"attendees,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func FromEvent(e event.Event) Notification {
	n := Notification{
		Kind:       e.Kind,
		Change:     e.Change,
		OccurredAt: e.OccurredAt,
	}
	if e.Actor != nil {
		n.ActorName = e.Actor.Name
	}
	s := e.Session
	if s == nil {
		return n
	}
	n.SessionID = s.ID
	n.Title = s.Title
	n.Topic = s.Topic
	n.Location = s.Location
	n.Date = s.Date.ToDateString()
	n.StartTime = s.StartTime.String()
	n.EndTime = s.EndTime.String()
	n.AttendeeCount = len(s.Attendees)
	n.AttendeeLimit = s.AttendeeLimit
	if s.Owner != nil {
		n.OwnerName = s.Owner.Name
	}
	if s.DiscordChannelID != nil {
		n.ChannelID = *s.DiscordChannelID
	}
	for _, a := range s.Attendees {
		n.Attendees = append(n.Attendees, Recipient{Name: a.Name, Email: a.Email})
	}
	return n
}

// Message renders the chat text for n.
func (n Notification) Message() string {
	when := fmt.Sprintf("%s, %s - %s", humanDate(n.Date), n.StartTime, n.EndTime)
	switch n.Kind {
	case event.SessionCreated:
		return fmt.Sprintf("New growth session: **%s**\n%s at %s\nHosted by %s", n.Title, when, n.Location, n.OwnerName)
	case event.SessionAttendeeChanged:
		verb := "joined"
		if n.Change == event.Left {
			verb = "left"
		}
		return fmt.Sprintf("%s %s **%s** (%s)", n.ActorName, verb, n.Title, n.seats())
	case event.SessionUpdated:
		return fmt.Sprintf("**%s** was updated\n%s at %s", n.Title, when, n.Location)
	case event.SessionDeleted:
		return fmt.Sprintf("**%s** on %s was cancelled", n.Title, humanDate(n.Date))
	default:
		return n.Title
	}
}

func (n Notification) seats() string {
	if n.AttendeeLimit != nil {
		return fmt.Sprintf("%d/%d attending", n.AttendeeCount, *n.AttendeeLimit)
	}
	return fmt.Sprintf("%d attending", n.AttendeeCount)
}

func humanDate(key string) string {
	d, err := calendar.ParseByDate(key, nil)
	if err != nil {
		return strings.TrimSpace(key)
	}
	return d.Time().Format("Monday, Jan 2")
}
