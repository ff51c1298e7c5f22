// Package presenter maps domain entities to the JSON payloads in pkg/api.
package presenter

import (
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/policy"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

// User hides the email address unless withEmail is set.
func User(u entity.User, withEmail bool) api.User {
	out := api.User{
		ID:             u.ID,
		Name:           u.Name,
		GithubNickname: u.GithubNickname,
		Avatar:         u.AvatarURL,
		IsVehiklMember: u.IsVehiklMember,
	}
	if withEmail {
		out.Email = u.Email
	}
	return out
}

func Comment(c entity.Comment) api.Comment {
	out := api.Comment{
		ID:              c.ID,
		GrowthSessionID: c.GrowthSessionID,
		UserID:          c.UserID,
		Content:         c.Content,
		CreatedAt:       c.CreatedAt,
	}
	if c.User != nil {
		u := User(*c.User, false)
		out.User = &u
	}
	return out
}

// GrowthSession renders s for viewerID (nil for guests). Permissions are attached unless
// now is zero.
func GrowthSession(s *entity.GrowthSession, viewerID *int64, now calendar.DateTime) api.GrowthSession {
	out := api.GrowthSession{
		ID:               s.ID,
		Title:            s.Title,
		Topic:            s.Topic,
		Location:         s.Location,
		Date:             s.Date.ToDateString(),
		StartTime:        s.StartTime.String(),
		EndTime:          s.EndTime.String(),
		IsPublic:         s.IsPublic,
		AttendeeLimit:    s.AttendeeLimit,
		DiscordChannelID: s.DiscordChannelID,
		Attendees:        make([]api.User, 0, len(s.Attendees)),
		Comments:         make([]api.Comment, 0, len(s.Comments)),
	}
	if s.Owner != nil {
		out.Owner = User(*s.Owner, false)
	} else {
		out.Owner = api.User{ID: s.OwnerID}
	}
	for _, a := range s.Attendees {
		out.Attendees = append(out.Attendees, User(a, false))
	}
	for _, c := range s.Comments {
		out.Comments = append(out.Comments, Comment(c))
	}
	if !now.IsZero() {
		p := Permissions(policy.Evaluate(s, viewerID, now))
		out.Permissions = &p
	}
	return out
}

func GrowthSessions(sessions []*entity.GrowthSession, viewerID *int64, now calendar.DateTime) []api.GrowthSession {
	out := make([]api.GrowthSession, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, GrowthSession(s, viewerID, now))
	}
	return out
}

// Week renders every day of w in order, including days without sessions.
func Week(w calendar.Week[*entity.GrowthSession], viewerID *int64, now calendar.DateTime) []api.Day {
	days := make([]api.Day, 0, len(w.Dates()))
	for _, d := range w.Dates() {
		days = append(days, api.Day{
			Date:           d.ToDateString(),
			GrowthSessions: GrowthSessions(w.GetSessionByDate(d), viewerID, now),
		})
	}
	return days
}

func Permissions(c policy.Controls) api.Permissions {
	return api.Permissions{
		CanJoin:   c.CanJoin,
		CanLeave:  c.CanLeave,
		CanEdit:   c.CanEdit,
		CanDelete: c.CanDelete,
	}
}

func DiscordChannels(channels []entity.DiscordChannel) []api.DiscordChannel {
	out := make([]api.DiscordChannel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, api.DiscordChannel{ID: ch.ID, Name: ch.Name})
	}
	return out
}
