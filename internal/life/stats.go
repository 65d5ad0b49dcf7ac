package life

import "strconv"

// MarkerKind classifies what last touched the elapsed-time marker.
type MarkerKind uint8

const (
	// MarkerUnset means no run has produced a change since init or clear.
	MarkerUnset MarkerKind = iota
	// MarkerManual means the last change was a manual edit.
	MarkerManual
	// MarkerElapsed means the last change was a generation; Seconds is valid.
	MarkerElapsed
)

// TimeMarker is the elapsed-time field of the statistics. It only moves when
// the board changes, never on its own.
type TimeMarker struct {
	Kind    MarkerKind
	Seconds int
}

// String renders "-" for unset and manual markers, and the whole seconds
// otherwise.
func (m TimeMarker) String() string {
	if m.Kind != MarkerElapsed {
		return "-"
	}
	return strconv.Itoa(m.Seconds)
}

// Snapshot is a point-in-time copy of the statistics.
type Snapshot struct {
	Total   int
	Live    int
	Dead    int
	Elapsed TimeMarker
}

// Stats keeps live/dead counts current from toggle events and generation
// deltas. Counts are only ever moved in pairs, so Live+Dead stays Total.
type Stats struct {
	total   int
	live    int
	dead    int
	elapsed TimeMarker
}

// NewStats returns statistics for a board of total cells, all dead.
func NewStats(total int) *Stats {
	s := &Stats{total: total}
	s.Reset()
	return s
}

// Reset restores the initial all-dead values.
func (s *Stats) Reset() {
	s.live = 0
	s.dead = s.total
	s.elapsed = TimeMarker{}
}

// OnToggle books a manual flip of one cell.
func (s *Stats) OnToggle(becameAlive bool) {
	d := -1
	if becameAlive {
		d = 1
	}
	s.live += d
	s.dead -= d
	s.elapsed = TimeMarker{Kind: MarkerManual}
}

// OnGenerationApplied books a committed generation delta.
func (s *Stats) OnGenerationApplied(activated, deactivated, elapsedSeconds int) {
	d := activated - deactivated
	s.live += d
	s.dead -= d
	s.elapsed = TimeMarker{Kind: MarkerElapsed, Seconds: elapsedSeconds}
}

// Snapshot copies the current values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{Total: s.total, Live: s.live, Dead: s.dead, Elapsed: s.elapsed}
}
