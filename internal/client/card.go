package client

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/policy"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

var (
	ErrNotAllowed = errors.New("action not available for this session")
	ErrCancelled  = errors.New("cancelled")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/oksasatya/growth-sessions/internal/client SessionActions,FormAPI,Confirmer

// SessionActions is the part of the API a card calls.
type SessionActions interface {
	Join(ctx context.Context, s api.GrowthSession) (api.GrowthSession, error)
	Leave(ctx context.Context, s api.GrowthSession) (api.GrowthSession, error)
	Delete(ctx context.Context, s api.GrowthSession) error
}

// Confirmer asks the user before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Card is one session as shown to a viewer. Its actions are only available when the
// controls allow them; a successful Join or Leave replaces Session with the server's copy.
type Card struct {
	Session  *GrowthSession
	ViewerID *int64
	API      SessionActions
	Confirm  Confirmer
	Clock    clock.Clock
	Location *time.Location
}

func (c *Card) now() calendar.DateTime {
	clk := c.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	return calendar.Today(clk, c.Location)
}

// Controls are re-evaluated on every call so a card left open past midnight stops offering
// actions.
func (c *Card) Controls() policy.Controls {
	return policy.Evaluate(c.Session, c.ViewerID, c.now())
}

func (c *Card) Join(ctx context.Context) error {
	if !c.Controls().CanJoin {
		return ErrNotAllowed
	}
	updated, err := c.API.Join(ctx, c.Session.GrowthSession)
	if err != nil {
		return err
	}
	c.Session = NewGrowthSession(updated, c.Location)
	return nil
}

func (c *Card) Leave(ctx context.Context) error {
	if !c.Controls().CanLeave {
		return ErrNotAllowed
	}
	updated, err := c.API.Leave(ctx, c.Session.GrowthSession)
	if err != nil {
		return err
	}
	c.Session = NewGrowthSession(updated, c.Location)
	return nil
}

// Delete asks for confirmation first; the API is not called unless it is given.
func (c *Card) Delete(ctx context.Context) error {
	if !c.Controls().CanDelete {
		return ErrNotAllowed
	}
	if c.Confirm == nil || !c.Confirm.Confirm("Are you sure you want to delete "+c.Session.Title+"?") {
		return ErrCancelled
	}
	return c.API.Delete(ctx, c.Session.GrowthSession)
}
