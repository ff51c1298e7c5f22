package entity

import "time"

type Comment struct {
	ID              int64
	GrowthSessionID int64
	UserID          int64
	User            *User
	Content         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
