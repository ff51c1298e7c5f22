package repository

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/oksasatya/growth-sessions/internal/domain/repository UserRepository,GrowthSessionRepository,CommentRepository,DiscordChannelRepository

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrAttendeeLimitReached = errors.New("attendee limit reached")
	ErrAlreadyAttending     = errors.New("already attending")
)
