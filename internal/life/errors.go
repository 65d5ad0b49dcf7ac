package life

import (
	"errors"
	"fmt"
)

var (
	// ErrRejectedWhileRunning is returned by edits attempted while a run is
	// active. It is an expected outcome; hosts treat it as a no-op.
	ErrRejectedWhileRunning = errors.New("rejected: simulation running")
	// ErrAlreadyRunning is returned by Start when the session is not idle.
	ErrAlreadyRunning = errors.New("simulation already running")
	// ErrNotRunning is returned by Stop and Tick when no run is active.
	ErrNotRunning = errors.New("simulation not running")
	// ErrStepInFlight is returned by Tick when a previous tick has not yet
	// finished applying its delta.
	ErrStepInFlight = errors.New("step already in flight")
)

// DelayError reports a non-positive generation interval.
type DelayError struct {
	DelayMs int
}

func (e *DelayError) Error() string {
	return fmt.Sprintf("invalid delay %dms: must be positive", e.DelayMs)
}
