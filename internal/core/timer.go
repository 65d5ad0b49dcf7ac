package core

import (
	"sync"
	"time"
)

// Scheduler invokes tick periodically between Start and Stop. Implementations
// never run two ticks concurrently.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
}

// IntervalScheduler drives ticks from a time.Ticker on its own goroutine.
type IntervalScheduler struct {
	mu   sync.Mutex
	quit chan struct{}
	done chan struct{}
}

// NewIntervalScheduler returns an idle scheduler.
func NewIntervalScheduler() *IntervalScheduler { return &IntervalScheduler{} }

// Start begins ticking every interval. A running schedule is stopped first.
func (s *IntervalScheduler) Start(interval time.Duration, tick func()) {
	s.Stop()
	if interval <= 0 {
		interval = time.Second
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quit := make(chan struct{})
	done := make(chan struct{})
	s.quit, s.done = quit, done
	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-quit:
				return
			case <-t.C:
				// A stop requested while waiting wins over a pending tick.
				select {
				case <-quit:
					return
				default:
				}
				tick()
			}
		}
	}()
}

// Stop cancels further ticks and waits for a running tick to return.
func (s *IntervalScheduler) Stop() {
	s.mu.Lock()
	quit, done := s.quit, s.done
	s.quit, s.done = nil, nil
	s.mu.Unlock()
	if quit == nil {
		return
	}
	close(quit)
	<-done
}

// FixedStep runs ticks from a host frame loop at a steady interval. The host
// calls Advance once per frame; at most one tick fires per call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	tick        func()
	now         func() time.Time
}

// NewFixedStep constructs an idle FixedStep.
func NewFixedStep() *FixedStep {
	return &FixedStep{step: time.Second, now: time.Now}
}

// Start arms the schedule. The first tick fires one interval after the first
// Advance call.
func (f *FixedStep) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
	f.accumulator = 0
	f.last = time.Time{}
	f.tick = tick
}

// Stop disarms the schedule.
func (f *FixedStep) Stop() {
	f.tick = nil
}

// Running reports whether a schedule is armed.
func (f *FixedStep) Running() bool { return f.tick != nil }

// Advance accumulates elapsed frame time and fires the tick when an interval
// has passed. Backlog beyond one interval is discarded rather than replayed.
func (f *FixedStep) Advance() bool {
	if f.tick == nil {
		return false
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	f.tick()
	return true
}
