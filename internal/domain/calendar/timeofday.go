package calendar

import (
	"fmt"
	"strings"
	"time"
)

var timeOfDayLayouts = []string{
	"3:04 pm",
	"3:04pm",
	"15:04",
	"15:04:05",
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{minutes: hour*60 + minute}
}

// ParseTimeOfDay accepts "4:45 pm", "04:45 pm", "16:45" and "16:45:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute()), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("parse time of day %q: unsupported format", s)
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

func (t TimeOfDay) clock() time.Time {
	return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// String renders the wire format, "03:30 pm".
func (t TimeOfDay) String() string { return t.clock().Format("03:04 pm") }

// SQL renders the 24h form accepted by a postgres time column.
func (t TimeOfDay) SQL() string { return t.clock().Format("15:04") }

// On places t on d's calendar day in d's location.
func (t TimeOfDay) On(d DateTime) time.Time {
	y, m, day := d.Time().Date()
	return time.Date(y, m, day, t.Hour(), t.Minute(), 0, 0, d.Time().Location())
}

func (t TimeOfDay) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
