package notification

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/domain/event"
)

// Sink delivers a notification somewhere: a queue, or straight to Discord.
type Sink interface {
	Send(ctx context.Context, n Notification) error
}

// Listener reacts to each session event kind with exactly one handler.
type Listener struct {
	sink Sink
	log  *logrus.Logger
}

func NewListener(sink Sink, log *logrus.Logger) *Listener {
	return &Listener{sink: sink, log: log}
}

// Register subscribes one handler per event kind.
func (l *Listener) Register(d *event.Dispatcher) {
	d.Subscribe(event.SessionCreated, event.ListenerFunc(l.NotifyCreation))
	d.Subscribe(event.SessionAttendeeChanged, event.ListenerFunc(l.NotifyAttendeeChange))
	d.Subscribe(event.SessionUpdated, event.ListenerFunc(l.NotifyUpdate))
	d.Subscribe(event.SessionDeleted, event.ListenerFunc(l.NotifyDelete))
}

func (l *Listener) NotifyCreation(ctx context.Context, e event.Event) error {
	return l.forward(ctx, event.SessionCreated, e)
}

func (l *Listener) NotifyAttendeeChange(ctx context.Context, e event.Event) error {
	return l.forward(ctx, event.SessionAttendeeChanged, e)
}

func (l *Listener) NotifyUpdate(ctx context.Context, e event.Event) error {
	return l.forward(ctx, event.SessionUpdated, e)
}

func (l *Listener) NotifyDelete(ctx context.Context, e event.Event) error {
	return l.forward(ctx, event.SessionDeleted, e)
}

func (l *Listener) forward(ctx context.Context, want event.Kind, e event.Event) error {
	if e.Kind != want {
		return fmt.Errorf("notification: got %s on the %s handler", e.Kind, want)
	}
	n := FromEvent(e)
	if err := l.sink.Send(ctx, n); err != nil {
		return fmt.Errorf("send %s notification for session %d: %w", e.Kind, n.SessionID, err)
	}
	if l.log != nil {
		l.log.WithFields(logrus.Fields{"kind": e.Kind, "session_id": n.SessionID}).Debug("notification sent")
	}
	return nil
}
