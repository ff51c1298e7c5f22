package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
)

func TestParseByDateRoundTrip(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	for _, key := range []string{"2020-05-08", "2020-02-29", "2021-12-31", "2020-03-08"} {
		d, err := ParseByDate(key, toronto)
		require.NoError(t, err)
		assert.Equal(t, key, d.ToDateString())

		again, err := ParseByDate(d.ToDateString(), toronto)
		require.NoError(t, err)
		assert.True(t, d.Time().Equal(again.Time()))
	}
}

func TestParseByDateRejectsGarbage(t *testing.T) {
	_, err := ParseByDate("08/05/2020", nil)
	assert.Error(t, err)
}

func TestAddDaysIsPure(t *testing.T) {
	d := MustParseByDate("2020-05-08")
	next := d.AddDays(1)

	assert.Equal(t, "2020-05-08", d.ToDateString())
	assert.Equal(t, "2020-05-09", next.ToDateString())
	assert.Equal(t, "2020-05-01", d.AddDays(-7).ToDateString())
}

func TestTodayUsesInjectedClock(t *testing.T) {
	now := clock.Fixed(time.Date(2020, 5, 1, 23, 30, 0, 0, time.UTC))
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	assert.Equal(t, "2020-05-01", Today(now, nil).ToDateString())
	assert.Equal(t, "2020-05-01", Today(now, toronto).ToDateString())

	late := clock.Fixed(time.Date(2020, 5, 2, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, "2020-05-01", Today(late, toronto).ToDateString())
}

func TestDayComparisonsIgnoreTimeOfDay(t *testing.T) {
	session := MustParseByDate("2020-05-08")
	evening := New(time.Date(2020, 5, 8, 22, 0, 0, 0, time.UTC))

	assert.True(t, evening.IsSameDay(session))
	assert.False(t, evening.IsAfterDay(session))
	assert.True(t, session.AddDays(1).IsAfterDay(session))
	assert.True(t, session.AddDays(-1).IsBeforeDay(session))
}

func TestWeekdays(t *testing.T) {
	days := Weekdays(MustParseByDate("2020-05-07")) // Thursday
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, d.ToDateString())
	}
	assert.Equal(t, []string{"2020-05-04", "2020-05-05", "2020-05-06", "2020-05-07", "2020-05-08"}, keys)

	sunday := Weekdays(MustParseByDate("2020-05-10"))
	assert.Equal(t, "2020-05-04", sunday[0].ToDateString())
}

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]string{
		"4:45 pm":  "04:45 pm",
		"04:45 PM": "04:45 pm",
		"3:30pm":   "03:30 pm",
		"17:00":    "05:00 pm",
		"09:15:00": "09:15 am",
		"12:00 am": "12:00 am",
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := ParseTimeOfDay("quarter past four")
	assert.Error(t, err)
	assert.Equal(t, "17:00", MustParseTimeOfDay("5:00 pm").SQL())
	assert.True(t, MustParseTimeOfDay("3:30 pm").Before(MustParseTimeOfDay("5:00 pm")))
}
