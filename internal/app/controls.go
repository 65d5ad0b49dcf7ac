package app

import (
	"errors"

	"torus-life/internal/life"
)

// Action is a host-independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionStartStop
	ActionClear
	ActionRandomize
	ActionFaster
	ActionSlower
)

const (
	delayStepMs = 100
	minDelayMs  = 10
)

// Controller translates user commands into session operations.
type Controller struct {
	Session *life.Session
	Seed    int64
	Density float64
}

// NewController binds a controller to a session.
func NewController(s *life.Session, seed int64, density float64) *Controller {
	return &Controller{Session: s, Seed: seed, Density: density}
}

// Click toggles the cell under the pointer.
func (c *Controller) Click(row, col int) error {
	return c.Session.Toggle(row, col)
}

// Do performs one action. Each randomize uses the next seed so repeated
// presses give different boards.
func (c *Controller) Do(a Action) error {
	s := c.Session
	switch a {
	case ActionStartStop:
		if s.IsRunning() {
			return s.Stop()
		}
		return s.Start()
	case ActionClear:
		return s.Clear()
	case ActionRandomize:
		if err := s.Randomize(c.Seed, c.Density); err != nil {
			return err
		}
		c.Seed++
		return nil
	case ActionFaster:
		return s.SetDelay(max(s.Delay()-delayStepMs, minDelayMs))
	case ActionSlower:
		return s.SetDelay(s.Delay() + delayStepMs)
	}
	return nil
}

// Rejected reports whether err is the expected refusal of an edit during a
// run, which hosts treat as a no-op.
func Rejected(err error) bool {
	return errors.Is(err, life.ErrRejectedWhileRunning)
}
