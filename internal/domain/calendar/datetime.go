package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
)

// DateLayout is the canonical date key used on the wire, in SQL and as week bucket keys.
const DateLayout = "2006-01-02"

// DateTime wraps an instant and exposes calendar-day arithmetic on it.
// The zero value is the zero time.
type DateTime struct {
	t time.Time
}

func New(t time.Time) DateTime { return DateTime{t: t} }

// ParseByDate parses a YYYY-MM-DD key as midnight in loc (UTC when loc is nil).
// ParseByDate(s).ToDateString() == s for every valid key.
func ParseByDate(s string, loc *time.Location) (DateTime, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateTime{t: t}, nil
}

// MustParseByDate is ParseByDate in UTC that panics on malformed input.
func MustParseByDate(s string) DateTime {
	d, err := ParseByDate(s, nil)
	if err != nil {
		panic(err)
	}
	return d
}

// Now returns the clock's current instant in loc.
func Now(c clock.Clock, loc *time.Location) DateTime {
	if loc == nil {
		loc = time.UTC
	}
	return DateTime{t: c.Now().In(loc)}
}

// Today returns midnight of the clock's current day in loc.
func Today(c clock.Clock, loc *time.Location) DateTime {
	return Now(c, loc).StartOfDay()
}

func (d DateTime) Time() time.Time { return d.t }

func (d DateTime) IsZero() bool { return d.t.IsZero() }

func (d DateTime) ToDateString() string { return d.t.Format(DateLayout) }

func (d DateTime) String() string { return d.ToDateString() }

// ToISOString renders the full instant, e.g. for log fields.
func (d DateTime) ToISOString() string { return d.t.Format(time.RFC3339Nano) }

// AddDays returns a new DateTime n calendar days away; d is left untouched.
func (d DateTime) AddDays(n int) DateTime {
	return DateTime{t: d.t.AddDate(0, 0, n)}
}

func (d DateTime) StartOfDay() DateTime {
	y, m, day := d.t.Date()
	return DateTime{t: time.Date(y, m, day, 0, 0, 0, 0, d.t.Location())}
}

// StartOfWeek returns the Monday of d's week.
func (d DateTime) StartOfWeek() DateTime {
	offset := (int(d.t.Weekday()) + 6) % 7
	return d.StartOfDay().AddDays(-offset)
}

func (d DateTime) Weekday() time.Weekday { return d.t.Weekday() }

// Calendar-day comparisons ignore time of day. Each side is read in its own location.

func (d DateTime) IsSameDay(o DateTime) bool { return d.ToDateString() == o.ToDateString() }

func (d DateTime) IsAfterDay(o DateTime) bool { return d.ToDateString() > o.ToDateString() }

func (d DateTime) IsBeforeDay(o DateTime) bool { return d.ToDateString() < o.ToDateString() }

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.ToDateString()), nil
}

func (d *DateTime) UnmarshalText(b []byte) error {
	parsed, err := ParseByDate(string(b), nil)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Weekdays returns Monday through Friday of the week containing d.
func Weekdays(d DateTime) []DateTime {
	monday := d.StartOfWeek()
	out := make([]DateTime, 0, 5)
	for i := 0; i < 5; i++ {
		out = append(out, monday.AddDays(i))
	}
	return out
}
