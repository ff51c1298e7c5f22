package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/oksasatya/growth-sessions/internal/common/clock Clock

// Clock is the single source of "now" for anything that compares against the current date.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Handy for seeding and for tests that do not
// care how many times Now is called.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
