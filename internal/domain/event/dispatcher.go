package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type Listener interface {
	Handle(ctx context.Context, e Event) error
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ctx context.Context, e Event) error

func (f ListenerFunc) Handle(ctx context.Context, e Event) error { return f(ctx, e) }

// Publisher is what the write path depends on.
type Publisher interface {
	Dispatch(ctx context.Context, e Event) error
}

// Dispatcher is an in-process observer list keyed by event kind.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[Kind][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Kind][]Listener)}
}

func (d *Dispatcher) Subscribe(kind Kind, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[kind] = append(d.listeners[kind], l)
}

func (d *Dispatcher) Listeners(kind Kind) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[kind])
}

// Dispatch runs every listener for e.Kind synchronously, in subscription order. A failing
// listener does not stop the ones after it; all failures come back joined.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) error {
	d.mu.RLock()
	ls := append([]Listener(nil), d.listeners[e.Kind]...)
	d.mu.RUnlock()

	var errs []error
	for i, l := range ls {
		if err := l.Handle(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("%s listener #%d: %w", e.Kind, i, err))
		}
	}
	return errors.Join(errs...)
}

var _ Publisher = (*Dispatcher)(nil)
