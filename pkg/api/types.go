// Package api holds the JSON payloads exchanged between the server and its clients.
package api

import "time"

type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	GithubNickname string `json:"github_nickname"`
	Email          string `json:"email,omitempty"`
	Avatar         string `json:"avatar"`
	IsVehiklMember bool   `json:"is_vehikl_member"`
}

type Comment struct {
	ID              int64     `json:"id"`
	GrowthSessionID int64     `json:"growth_session_id"`
	UserID          int64     `json:"user_id"`
	User            *User     `json:"user,omitempty"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

// Permissions mirrors the card controls computed for the requesting user.
type Permissions struct {
	CanJoin   bool `json:"can_join"`
	CanLeave  bool `json:"can_leave"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// GrowthSession dates are YYYY-MM-DD, times are "03:30 pm".
type GrowthSession struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Topic            string       `json:"topic"`
	Location         string       `json:"location"`
	Date             string       `json:"date"`
	StartTime        string       `json:"start_time"`
	EndTime          string       `json:"end_time"`
	IsPublic         bool         `json:"is_public"`
	AttendeeLimit    *int         `json:"attendee_limit"`
	DiscordChannelID *string      `json:"discord_channel_id"`
	Owner            User         `json:"owner"`
	Attendees        []User       `json:"attendees"`
	Comments         []Comment    `json:"comments"`
	Permissions      *Permissions `json:"permissions,omitempty"`
}

// Day is one bucket of the week view. Days come back in calendar order.
type Day struct {
	Date           string          `json:"date"`
	GrowthSessions []GrowthSession `json:"growth_sessions"`
}

type DiscordChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreGrowthSessionRequest is the body of both create and update. An omitted
// attendee_limit means unlimited; an omitted end_time falls back to the server default.
type StoreGrowthSessionRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Topic            string  `json:"topic" binding:"required"`
	Location         string  `json:"location" binding:"required,max=255"`
	Date             string  `json:"date" binding:"required,isodate"`
	StartTime        string  `json:"start_time" binding:"required,timeofday"`
	EndTime          string  `json:"end_time,omitempty" binding:"omitempty,timeofday"`
	IsPublic         bool    `json:"is_public"`
	AttendeeLimit    *int    `json:"attendee_limit,omitempty" binding:"omitempty,min=1"`
	DiscordChannelID *string `json:"discord_channel_id,omitempty"`
}

type StoreCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CalendarToken struct {
	FeedURL string `json:"feed_url"`
}
