package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

func TestFindChannel(t *testing.T) {
	channels := []api.DiscordChannel{{ID: "1", Name: "Chat One"}, {ID: "2", Name: "Chat Two"}}

	ch, ok := findChannel(channels, "2")
	assert.True(t, ok)
	assert.Equal(t, "Chat Two", ch.Name)

	ch, ok = findChannel(channels, "chat one")
	assert.True(t, ok)
	assert.Equal(t, "1", ch.ID)

	_, ok = findChannel(channels, "Chat Three")
	assert.False(t, ok)
}

func TestConfirm(t *testing.T) {
	for answer, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "": false} {
		var out bytes.Buffer
		assert.Equal(t, want, confirm(strings.NewReader(answer), &out, "Delete?"), "answer %q", answer)
		assert.Equal(t, "Delete? [y/N]: ", out.String())
	}
}

func TestTodayUsesClockInConfiguredZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 20:00 UTC on the 8th is already the 9th in Tokyo
	e := &env{loc: tokyo, clk: clock.Fixed(time.Date(2020, 5, 8, 20, 0, 0, 0, time.UTC))}
	assert.Equal(t, "2020-05-09", e.today())

	e.loc = time.UTC
	assert.Equal(t, "2020-05-08", e.today())
}
