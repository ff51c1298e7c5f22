package entity

import (
	"time"
)

// User is a GitHub-authenticated member of the app.
// CalendarTokenHash holds the bcrypt hash of the personal iCal feed secret, if one was issued.
type User struct {
	ID                int64
	Name              string
	GithubNickname    string
	Email             string
	AvatarURL         string
	IsVehiklMember    bool
	CalendarTokenHash string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
