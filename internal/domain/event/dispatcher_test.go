package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

func TestDispatchRoutesByKind(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(SessionCreated, ListenerFunc(func(ctx context.Context, e Event) error {
		got = append(got, "created:"+e.Session.Title)
		return nil
	}))
	d.Subscribe(SessionDeleted, ListenerFunc(func(ctx context.Context, e Event) error {
		got = append(got, "deleted")
		return nil
	}))

	err := d.Dispatch(context.Background(), Event{Kind: SessionCreated, Session: &entity.GrowthSession{Title: "TDD"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"created:TDD"}, got)
	assert.Equal(t, 1, d.Listeners(SessionCreated))
	assert.Equal(t, 0, d.Listeners(SessionUpdated))
}

func TestDispatchKeepsGoingAfterAFailure(t *testing.T) {
	d := NewDispatcher()
	boom := errors.New("webhook down")
	calls := 0
	d.Subscribe(SessionUpdated, ListenerFunc(func(ctx context.Context, e Event) error {
		calls++
		return boom
	}))
	d.Subscribe(SessionUpdated, ListenerFunc(func(ctx context.Context, e Event) error {
		calls++
		return nil
	}))

	err := d.Dispatch(context.Background(), Event{Kind: SessionUpdated})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDispatchWithoutListeners(t *testing.T) {
	assert.NoError(t, NewDispatcher().Dispatch(context.Background(), Event{Kind: SessionAttendeeChanged}))
}
