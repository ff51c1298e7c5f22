package icalfeed

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

func TestEncode(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)
	date, err := calendar.ParseByDate("2024-03-04", toronto)
	require.NoError(t, err)

	sessions := []*entity.GrowthSession{{
		ID:        7,
		Title:     "Refactoring katas",
		Topic:     "Gilded rose",
		Location:  "Discord Channel: Mob 1",
		Date:      date,
		StartTime: calendar.MustParseTimeOfDay("15:30"),
		EndTime:   calendar.MustParseTimeOfDay("17:00"),
		Owner:     &entity.User{Name: "Grace", Email: "grace@example.com"},
	}}

	var buf bytes.Buffer
	err = Encode(&buf, sessions, Options{
		Name:       "Growth Sessions",
		ProductID:  "-//growth-sessions//EN",
		Domain:     "mobs.example.com",
		SessionURL: func(id int64) string { return "https://mobs.example.com/growth_sessions/7" },
		Stamp:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//growth-sessions//EN")
	assert.Contains(t, out, "X-WR-CALNAME:Growth Sessions")
	assert.Contains(t, out, "UID:growth-session-7@mobs.example.com")
	assert.Contains(t, out, "SUMMARY:Refactoring katas")
	assert.Contains(t, out, "DTSTART;TZID=America/Toronto:20240304T153000")
	assert.Contains(t, out, "DTEND;TZID=America/Toronto:20240304T170000")
	assert.Contains(t, out, "DTSTAMP:20240301T120000Z")
	assert.Contains(t, out, "mailto:grace@example.com")
}

func TestEncodeEmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, Options{ProductID: "-//growth-sessions//EN", Stamp: time.Now()}))
	assert.Contains(t, buf.String(), "END:VCALENDAR")
	assert.NotContains(t, buf.String(), "VEVENT")
}
