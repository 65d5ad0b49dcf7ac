package life

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"torus-life/internal/core"
)

// RunState enumerates the run-control states of a Session.
type RunState uint8

const (
	// Idle accepts edits and Start.
	Idle RunState = iota
	// Running steps on every scheduler tick and rejects edits.
	Running
	// Stopping waits for the in-flight tick before returning to Idle.
	Stopping
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	}
	return "unknown"
}

// Observer receives every committed change together with the statistics
// after it. Apply runs while the session is locked and must not call back
// into the Session.
type Observer interface {
	Apply(d core.Delta, s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(d core.Delta, s Snapshot)

// Apply calls f.
func (f ObserverFunc) Apply(d core.Delta, s Snapshot) { f(d, s) }

// Option customises a Session.
type Option func(*Session)

// WithClock replaces time.Now as the source of run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithObserver registers the rendering collaborator.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithLogger sets the logger used for errors raised on the scheduler path.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns one board for its lifetime: the grid, its statistics, and the
// Idle/Running state machine. Ticks are single-flight: a tick that arrives
// while another is stepping is rejected with ErrStepInFlight and logged.
type Session struct {
	mu         sync.Mutex
	grid       *core.Grid
	engine     *Engine
	stats      *Stats
	state      RunState
	delayMs    int
	startTime  time.Time
	generation int

	inFlight atomic.Bool

	sched    core.Scheduler
	now      func() time.Time
	observer Observer
	logger   *log.Logger
}

// NewSession allocates an all-dead board of cfg.Width x cfg.Height. sched is
// started and stopped by Start and Stop.
func NewSession(cfg Config, sched core.Scheduler, opts ...Option) (*Session, error) {
	if sched == nil {
		return nil, errors.New("life: nil scheduler")
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.DelayMs <= 0 {
		return nil, &DelayError{DelayMs: cfg.DelayMs}
	}
	s := &Session{
		grid:    grid,
		engine:  NewEngine(cfg.Workers),
		stats:   NewStats(grid.Size().Total()),
		delayMs: cfg.DelayMs,
		sched:   sched,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.grid.Size() }

// Get returns the state of one cell.
func (s *Session) Get(row, col int) (core.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Get(row, col)
}

// Cells returns a copy of the row-major board.
func (s *Session) Cells() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint8(nil), s.grid.Cells()...)
}

// IsRunning reports whether the session is outside the Idle state.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != Idle
}

// State returns the current run state.
func (s *Session) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns the current statistics.
func (s *Session) Stats() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Snapshot()
}

// Generation returns the number of steps taken since the session began or
// was last cleared.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Delay returns the configured interval in milliseconds.
func (s *Session) Delay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delayMs
}

// SetDelay changes the generation interval. The delay is locked while a run
// is active.
func (s *Session) SetDelay(ms int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrRejectedWhileRunning
	}
	if ms <= 0 {
		return &DelayError{DelayMs: ms}
	}
	s.delayMs = ms
	return nil
}

// Toggle flips one cell while idle.
func (s *Session) Toggle(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrRejectedWhileRunning
	}
	st, err := s.grid.Toggle(row, col)
	if err != nil {
		return err
	}
	s.stats.OnToggle(st == core.Alive)
	p := []core.Pos{{Row: row, Col: col}}
	if st == core.Alive {
		s.notify(core.Delta{Activated: p})
	} else {
		s.notify(core.Delta{Deactivated: p})
	}
	return nil
}

// Clear kills every cell and resets the statistics while idle.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrRejectedWhileRunning
	}
	alive := s.grid.Alive()
	s.grid.Clear()
	s.stats.Reset()
	s.generation = 0
	s.notify(core.Delta{Deactivated: alive})
	return nil
}

// Randomize reseeds the board while idle: each cell is alive with the given
// probability. Every flipped cell is booked as a manual toggle.
func (s *Session) Randomize(seed int64, density float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrRejectedWhileRunning
	}
	rng := core.NewRNG(seed)
	var d core.Delta
	w, h := s.grid.Width(), s.grid.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			want := rng.Chance(density)
			cur, _ := s.grid.Get(row, col)
			if want == (cur == core.Alive) {
				continue
			}
			st, _ := s.grid.Toggle(row, col)
			s.stats.OnToggle(st == core.Alive)
			if st == core.Alive {
				d.Activated = append(d.Activated, core.Pos{Row: row, Col: col})
			} else {
				d.Deactivated = append(d.Deactivated, core.Pos{Row: row, Col: col})
			}
		}
	}
	if !d.Empty() {
		s.notify(d)
	}
	return nil
}

// Start captures the run start time and hands the tick to the scheduler.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrAlreadyRunning
	}
	s.state = Running
	s.startTime = s.now()
	s.sched.Start(time.Duration(s.delayMs)*time.Millisecond, s.onTick)
	return nil
}

// Stop cancels further ticks. It returns once any in-flight tick has applied
// its delta and the session is idle again.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.state = Stopping
	s.mu.Unlock()

	s.sched.Stop()

	s.mu.Lock()
	s.state = Idle
	s.mu.Unlock()
	return nil
}

// Tick advances one generation: step against the current board, commit the
// delta, book it, and notify the observer. An empty delta leaves the
// statistics, including the elapsed marker, untouched.
func (s *Session) Tick() (core.Delta, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return core.Delta{}, ErrStepInFlight
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return core.Delta{}, ErrNotRunning
	}
	d := s.engine.Step(s.grid)
	s.generation++
	if d.Empty() {
		return d, nil
	}
	if err := s.grid.ApplyDelta(d); err != nil {
		return core.Delta{}, fmt.Errorf("apply generation %d: %w", s.generation, err)
	}
	elapsed := int(s.now().Sub(s.startTime) / time.Second)
	s.stats.OnGenerationApplied(len(d.Activated), len(d.Deactivated), elapsed)
	s.notify(d)
	return d, nil
}

func (s *Session) onTick() {
	if _, err := s.Tick(); err != nil && !errors.Is(err, ErrNotRunning) {
		s.logger.Printf("life: tick: %v", err)
	}
}

func (s *Session) notify(d core.Delta) {
	if s.observer != nil {
		s.observer.Apply(d, s.stats.Snapshot())
	}
}

// Parameters describes the session for host status panels.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.stats.Snapshot()
	size := s.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", size.W, size.H)},
				{Key: "total", Label: "Total", Value: strconv.Itoa(snap.Total)},
				{Key: "live", Label: "Live", Value: strconv.Itoa(snap.Live)},
				{Key: "dead", Label: "Dead", Value: strconv.Itoa(snap.Dead)},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: s.state.String()},
				{Key: "time", Label: "Time (s)", Value: snap.Elapsed.String()},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(s.generation)},
				{Key: "delay", Label: "Delay (ms)", Value: strconv.Itoa(s.delayMs)},
			},
		},
	}}
}
