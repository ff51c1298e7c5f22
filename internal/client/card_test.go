package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/growth-sessions/internal/client/mocks"
	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

const (
	ownerID    int64 = 1
	attendeeID int64 = 2
	outsiderID int64 = 3
)

func sessionPayload() api.GrowthSession {
	limit := 4
	return api.GrowthSession{
		ID:            10,
		Title:         "Mob programming",
		Topic:         "Katas",
		Location:      "Kitchen",
		Date:          "2020-05-08",
		StartTime:     "03:30 pm",
		EndTime:       "05:00 pm",
		AttendeeLimit: &limit,
		Owner:         api.User{ID: ownerID, Name: "Grace"},
		Attendees:     []api.User{{ID: attendeeID, Name: "Ada"}},
	}
}

func at(date string) clock.Clock {
	t, err := time.Parse("2006-01-02 15:04", date+" 12:00")
	if err != nil {
		panic(err)
	}
	return clock.Fixed(t)
}

func card(viewer *int64, now string) *Card {
	return &Card{Session: NewGrowthSession(sessionPayload(), nil), ViewerID: viewer, Clock: at(now)}
}

func id(v int64) *int64 { return &v }

func TestCardControlsBeforeSession(t *testing.T) {
	tests := []struct {
		name   string
		viewer *int64
		join   bool
		leave  bool
		edit   bool
	}{
		{name: "guest", viewer: nil},
		{name: "owner", viewer: id(ownerID), edit: true},
		{name: "attendee", viewer: id(attendeeID), leave: true},
		{name: "outsider", viewer: id(outsiderID), join: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := card(tt.viewer, "2020-05-01").Controls()
			assert.Equal(t, tt.join, c.CanJoin, "join")
			assert.Equal(t, tt.leave, c.CanLeave, "leave")
			assert.Equal(t, tt.edit, c.CanEdit, "edit")
			assert.Equal(t, tt.edit, c.CanDelete, "delete")
		})
	}
}

func TestCardControlsOnSessionDayAreStillShown(t *testing.T) {
	assert.True(t, card(id(outsiderID), "2020-05-08").Controls().CanJoin)
}

func TestCardHidesEverythingTheDayAfter(t *testing.T) {
	for _, viewer := range []*int64{id(ownerID), id(attendeeID), id(outsiderID)} {
		c := card(viewer, "2020-05-09").Controls()
		assert.False(t, c.CanJoin || c.CanLeave || c.CanEdit || c.CanDelete, "viewer %d", *viewer)
	}
}

func TestCardJoinReplacesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	actions := mocks.NewMockSessionActions(ctrl)
	c := card(id(outsiderID), "2020-05-01")
	c.API = actions

	joined := sessionPayload()
	joined.Attendees = append(joined.Attendees, api.User{ID: outsiderID, Name: "Bob"})
	actions.EXPECT().Join(gomock.Any(), sessionPayload()).Return(joined, nil)

	require.NoError(t, c.Join(context.Background()))
	assert.True(t, c.Session.HasAttendee(outsiderID))
	assert.False(t, c.Controls().CanJoin)
	assert.True(t, c.Controls().CanLeave)
}

func TestCardRefusesActionsTheControlsHide(t *testing.T) {
	ctrl := gomock.NewController(t)
	actions := mocks.NewMockSessionActions(ctrl)

	owner := card(id(ownerID), "2020-05-01")
	owner.API = actions
	assert.ErrorIs(t, owner.Join(context.Background()), ErrNotAllowed)

	outsider := card(id(outsiderID), "2020-05-01")
	outsider.API = actions
	assert.ErrorIs(t, outsider.Leave(context.Background()), ErrNotAllowed)
	assert.ErrorIs(t, outsider.Delete(context.Background()), ErrNotAllowed)
}

func TestCardLeave(t *testing.T) {
	ctrl := gomock.NewController(t)
	actions := mocks.NewMockSessionActions(ctrl)
	c := card(id(attendeeID), "2020-05-01")
	c.API = actions

	left := sessionPayload()
	left.Attendees = nil
	actions.EXPECT().Leave(gomock.Any(), sessionPayload()).Return(left, nil)

	require.NoError(t, c.Leave(context.Background()))
	assert.True(t, c.Controls().CanJoin)
}

func TestCardDeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	actions := mocks.NewMockSessionActions(ctrl)
	confirm := mocks.NewMockConfirmer(ctrl)
	c := card(id(ownerID), "2020-05-01")
	c.API = actions
	c.Confirm = confirm

	confirm.EXPECT().Confirm(gomock.Any()).Return(false)
	assert.ErrorIs(t, c.Delete(context.Background()), ErrCancelled)

	confirm.EXPECT().Confirm("Are you sure you want to delete Mob programming?").Return(true)
	actions.EXPECT().Delete(gomock.Any(), sessionPayload()).Return(nil)
	require.NoError(t, c.Delete(context.Background()))
}

func TestCardDeleteWithoutConfirmerNeverCallsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := card(id(ownerID), "2020-05-01")
	c.API = mocks.NewMockSessionActions(ctrl)

	assert.ErrorIs(t, c.Delete(context.Background()), ErrCancelled)
}

func TestNewWeekGrowthSessions(t *testing.T) {
	first := sessionPayload()
	second := sessionPayload()
	second.ID = 11
	days := []api.Day{
		{Date: "2020-05-04", GrowthSessions: []api.GrowthSession{first, second}},
		{Date: "2020-05-05"},
		{Date: "2020-05-06"},
		{Date: "2020-05-07"},
		{Date: "2020-05-08", GrowthSessions: []api.GrowthSession{second}},
	}
	week := NewWeekGrowthSessions(days, nil)

	assert.True(t, week.IsReady())
	assert.Equal(t, "2020-05-04", week.FirstDay().ToDateString())
	assert.Equal(t, "2020-05-08", week.LastDay().ToDateString())
	mobs := week.AllMobs()
	require.Len(t, mobs, 3)
	assert.Equal(t, []int64{10, 11, 11}, []int64{mobs[0].ID, mobs[1].ID, mobs[2].ID})
	assert.Equal(t, "1/4", mobs[0].Seats())
}

func TestNewWeekGrowthSessionsSingleDayIsNotReady(t *testing.T) {
	week := NewWeekGrowthSessions([]api.Day{{Date: "2020-05-04"}}, nil)
	assert.False(t, week.IsReady())
	assert.Empty(t, week.AllMobs())
}
