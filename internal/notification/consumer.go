package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Outcome is what the worker does with a delivery after processing it.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	default:
		return "drop"
	}
}

var ErrMalformed = errors.New("malformed notification")

// Process decodes one queued message and hands it to sink. Undecodable bodies are dropped;
// delivery failures are requeued once, then dropped on redelivery.
func Process(ctx context.Context, sink Sink, body []byte, redelivered bool) (Outcome, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return Drop, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if n.Kind == "" {
		return Drop, fmt.Errorf("%w: missing kind", ErrMalformed)
	}
	if err := sink.Send(ctx, n); err != nil {
		if redelivered {
			return Drop, err
		}
		return Requeue, err
	}
	return Ack, nil
}
