package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

func session() *entity.GrowthSession {
	return &entity.GrowthSession{
		ID:        3,
		OwnerID:   1,
		Owner:     &entity.User{ID: 1, Name: "Grace", Email: "grace@example.com"},
		Title:     "Mob",
		Date:      calendar.MustParseByDate("2024-03-05"),
		StartTime: calendar.MustParseTimeOfDay("15:30"),
		EndTime:   calendar.MustParseTimeOfDay("17:00"),
		Attendees: []entity.User{{ID: 2, Name: "Ada", Email: "ada@example.com"}},
		Comments:  []entity.Comment{{ID: 9, UserID: 2, Content: "hi", User: &entity.User{ID: 2, Name: "Ada"}}},
	}
}

func TestGrowthSessionPayload(t *testing.T) {
	viewer := int64(2)
	out := GrowthSession(session(), &viewer, calendar.MustParseByDate("2024-03-04"))

	assert.Equal(t, "2024-03-05", out.Date)
	assert.Equal(t, "03:30 pm", out.StartTime)
	assert.Equal(t, "05:00 pm", out.EndTime)
	assert.Equal(t, "Grace", out.Owner.Name)
	assert.Empty(t, out.Owner.Email)
	require.Len(t, out.Attendees, 1)
	assert.Empty(t, out.Attendees[0].Email)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "Ada", out.Comments[0].User.Name)

	require.NotNil(t, out.Permissions)
	assert.True(t, out.Permissions.CanLeave)
	assert.False(t, out.Permissions.CanJoin)
	assert.False(t, out.Permissions.CanEdit)
}

func TestGrowthSessionWithoutNowHasNoPermissions(t *testing.T) {
	out := GrowthSession(session(), nil, calendar.DateTime{})
	assert.Nil(t, out.Permissions)
}

func TestWeekKeepsEmptyDays(t *testing.T) {
	monday := calendar.MustParseByDate("2024-03-04")
	w := calendar.Bucket(calendar.Weekdays(monday), []*entity.GrowthSession{session()},
		func(s *entity.GrowthSession) calendar.DateTime { return s.Date })

	days := Week(w, nil, monday)
	require.Len(t, days, 5)
	assert.Equal(t, "2024-03-04", days[0].Date)
	assert.Empty(t, days[0].GrowthSessions)
	assert.NotNil(t, days[0].GrowthSessions)
	require.Len(t, days[1].GrowthSessions, 1)
	assert.Equal(t, int64(3), days[1].GrowthSessions[0].ID)
}
