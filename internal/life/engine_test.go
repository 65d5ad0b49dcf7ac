package life

import (
	"slices"
	"testing"

	"torus-life/internal/core"
)

func newGrid(t *testing.T, w, h int, alive ...core.Pos) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d,%d): %v", w, h, err)
	}
	for _, p := range alive {
		if err := g.Set(p.Row, p.Col, core.Alive); err != nil {
			t.Fatalf("Set(%d,%d): %v", p.Row, p.Col, err)
		}
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, step string, want ...core.Pos) {
	t.Helper()
	expects := map[core.Pos]bool{}
	for _, p := range want {
		expects[p] = true
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			st, _ := g.Get(row, col)
			alive := st == core.Alive
			if alive != expects[core.Pos{Row: row, Col: col}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, row, col, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := []core.Pos{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	vertical := []core.Pos{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}
	g := newGrid(t, 5, 5, horizontal...)
	e := NewEngine(1)

	d := e.Step(g)
	if err := g.ApplyDelta(d); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	expectAlive(t, g, "after first step", vertical...)

	d = e.Step(g)
	if err := g.ApplyDelta(d); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	expectAlive(t, g, "after second step", horizontal...)
}

func TestBlinkerDeltaIsMinimal(t *testing.T) {
	g := newGrid(t, 5, 5, core.Pos{Row: 2, Col: 1}, core.Pos{Row: 2, Col: 2}, core.Pos{Row: 2, Col: 3})
	d := NewEngine(1).Step(g)

	wantOn := []core.Pos{{Row: 1, Col: 2}, {Row: 3, Col: 2}}
	wantOff := []core.Pos{{Row: 2, Col: 1}, {Row: 2, Col: 3}}
	if !slices.Equal(d.Activated, wantOn) {
		t.Fatalf("activated = %v, want %v", d.Activated, wantOn)
	}
	if !slices.Equal(d.Deactivated, wantOff) {
		t.Fatalf("deactivated = %v, want %v", d.Deactivated, wantOff)
	}
}

func TestBlockStillLife(t *testing.T) {
	block := []core.Pos{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	g := newGrid(t, 4, 4, block...)
	d := NewEngine(1).Step(g)
	if !d.Empty() {
		t.Fatalf("block should be stable, got %+v", d)
	}
}

func TestEmptyGridEmptyDelta(t *testing.T) {
	g := newGrid(t, 7, 3)
	d := NewEngine(4).Step(g)
	if len(d.Activated) != 0 || len(d.Deactivated) != 0 {
		t.Fatalf("expected empty delta, got %+v", d)
	}
}

func TestStepDoesNotMutateGrid(t *testing.T) {
	g := newGrid(t, 6, 6, core.Pos{Row: 0, Col: 0}, core.Pos{Row: 0, Col: 1}, core.Pos{Row: 5, Col: 5}, core.Pos{Row: 3, Col: 3})
	before := append([]uint8(nil), g.Cells()...)
	for _, workers := range []int{1, 3} {
		d := NewEngine(workers).Step(g)
		if d.Empty() {
			t.Fatalf("workers=%d: expected changes on seeded grid", workers)
		}
		if !slices.Equal(before, g.Cells()) {
			t.Fatalf("workers=%d: Step mutated its input grid", workers)
		}
	}
}

func TestWrapAcrossEdges(t *testing.T) {
	// A blinker straddling the left/right seam must still oscillate.
	g := newGrid(t, 5, 5, core.Pos{Row: 2, Col: 4}, core.Pos{Row: 2, Col: 0}, core.Pos{Row: 2, Col: 1})
	e := NewEngine(1)
	if err := g.ApplyDelta(e.Step(g)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	expectAlive(t, g, "seam blinker", core.Pos{Row: 1, Col: 0}, core.Pos{Row: 2, Col: 0}, core.Pos{Row: 3, Col: 0})
}

func TestParallelMatchesSerial(t *testing.T) {
	g := newGrid(t, 37, 29)
	rng := core.NewRNG(7)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if rng.Chance(0.35) {
				_ = g.Set(row, col, core.Alive)
			}
		}
	}
	serial := g.Clone()
	parallel := g.Clone()
	se, pe := NewEngine(1), NewEngine(6)
	for gen := 0; gen < 20; gen++ {
		sd, pd := se.Step(serial), pe.Step(parallel)
		if !slices.Equal(sd.Activated, pd.Activated) || !slices.Equal(sd.Deactivated, pd.Deactivated) {
			t.Fatalf("generation %d: parallel delta differs from serial", gen)
		}
		_ = serial.ApplyDelta(sd)
		_ = parallel.ApplyDelta(pd)
	}
}

func TestMoreWorkersThanRows(t *testing.T) {
	g := newGrid(t, 5, 2, core.Pos{Row: 0, Col: 1}, core.Pos{Row: 0, Col: 2}, core.Pos{Row: 0, Col: 3})
	want := NewEngine(1).Step(g)
	got := NewEngine(16).Step(g)
	if !slices.Equal(want.Activated, got.Activated) || !slices.Equal(want.Deactivated, got.Deactivated) {
		t.Fatalf("delta mismatch: serial %+v parallel %+v", want, got)
	}
}

func TestSingleCellBoardCountsItself(t *testing.T) {
	// On 1x1 every wrapped neighbor is the cell itself: 8 live neighbors.
	g := newGrid(t, 1, 1, core.Pos{Row: 0, Col: 0})
	d := NewEngine(1).Step(g)
	if !slices.Equal(d.Deactivated, []core.Pos{{Row: 0, Col: 0}}) || len(d.Activated) != 0 {
		t.Fatalf("1x1 live cell should die of overcrowding, got %+v", d)
	}

	empty := newGrid(t, 1, 1)
	if d := NewEngine(1).Step(empty); !d.Empty() {
		t.Fatalf("1x1 dead cell should stay dead, got %+v", d)
	}
}

func TestSingleRowBoard(t *testing.T) {
	// On a 1-row board the rows above and below wrap onto the cell's own
	// row, so each horizontal neighbor is counted three times.
	g := newGrid(t, 5, 1, core.Pos{Row: 0, Col: 2})
	d := NewEngine(1).Step(g)
	// (0,2) sees itself above and below: 2 neighbors, survives.
	// (0,1) and (0,3) see column 2 three times: born.
	wantOn := []core.Pos{{Row: 0, Col: 1}, {Row: 0, Col: 3}}
	if !slices.Equal(d.Activated, wantOn) || len(d.Deactivated) != 0 {
		t.Fatalf("got %+v, want on=%v and no deaths", d, wantOn)
	}
}
