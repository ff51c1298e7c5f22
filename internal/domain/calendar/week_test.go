package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dates(keys ...string) []DateTime {
	out := make([]DateTime, 0, len(keys))
	for _, k := range keys {
		out = append(out, MustParseByDate(k))
	}
	return out
}

func TestWeekKeepsSuppliedOrder(t *testing.T) {
	// Deliberately not chronological: the caller's order wins.
	w := NewWeek(dates("2020-05-06", "2020-05-04", "2020-05-05"), map[string][]string{
		"2020-05-04": {"b1"},
		"2020-05-05": {"c1", "c2"},
		"2020-05-06": {"a1", "a2"},
	})

	assert.Equal(t, "2020-05-06", w.FirstDay().ToDateString())
	assert.Equal(t, "2020-05-05", w.LastDay().ToDateString())
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, w.AllMobs())
}

func TestWeekAllMobsLengthIsSumOfBuckets(t *testing.T) {
	byDate := map[string][]int{
		"2020-05-04": {1, 2, 3},
		"2020-05-05": {},
		"2020-05-06": {4},
		"2020-05-07": {5, 6},
		"2020-05-08": nil,
	}
	w := NewWeek(dates("2020-05-04", "2020-05-05", "2020-05-06", "2020-05-07", "2020-05-08"), byDate)

	total := 0
	for _, items := range byDate {
		total += len(items)
	}
	assert.Len(t, w.AllMobs(), total)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, w.AllMobs())
}

func TestWeekIsReady(t *testing.T) {
	four := NewWeek[int](dates("2020-05-04", "2020-05-05", "2020-05-06", "2020-05-07"), nil)
	five := NewWeek[int](dates("2020-05-04", "2020-05-05", "2020-05-06", "2020-05-07", "2020-05-08"), nil)
	dup := NewWeek[int](dates("2020-05-04", "2020-05-04", "2020-05-05", "2020-05-06", "2020-05-07"), nil)

	assert.False(t, four.IsReady())
	assert.True(t, five.IsReady())
	assert.False(t, dup.IsReady(), "repeated keys count once")
}

func TestEmptyWeekIsNotReady(t *testing.T) {
	today := MustParseByDate("2020-05-01")
	w := EmptyWeek[string](today)

	assert.False(t, w.IsReady())
	assert.Equal(t, today, w.FirstDay())
	assert.Equal(t, today, w.LastDay())
	assert.Empty(t, w.AllMobs())
	assert.NotNil(t, w.GetSessionByDate(today))
}

func TestGetSessionByDate(t *testing.T) {
	w := NewWeek(dates("2020-05-04", "2020-05-05"), map[string][]string{"2020-05-05": {"x"}})

	assert.Equal(t, []string{"x"}, w.GetSessionByDate(MustParseByDate("2020-05-05")))
	assert.Empty(t, w.GetSessionByDate(MustParseByDate("2020-05-04")))
	assert.Nil(t, w.GetSessionByDate(MustParseByDate("2020-06-01")))
}

func TestBucket(t *testing.T) {
	type item struct {
		name string
		day  string
	}
	items := []item{{"a", "2020-05-05"}, {"b", "2020-05-04"}, {"c", "2020-05-05"}, {"stray", "2020-06-01"}}
	w := Bucket(dates("2020-05-04", "2020-05-05"), items, func(i item) DateTime { return MustParseByDate(i.day) })

	names := []string{}
	for _, it := range w.AllMobs() {
		names = append(names, it.name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestEmptyWeekValue(t *testing.T) {
	var w Week[int]
	assert.True(t, w.FirstDay().IsZero())
	assert.True(t, w.LastDay().IsZero())
	assert.False(t, w.IsReady())
}
