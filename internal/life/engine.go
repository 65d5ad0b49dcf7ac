package life

import (
	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
)

// Engine computes Game of Life generations (B3/S23) on a toroidal grid.
type Engine struct {
	workers int
}

// NewEngine returns an engine that splits counting across the given number of
// goroutines. Values below 2 run serially.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

// Workers returns the configured parallelism.
func (e *Engine) Workers() int { return e.workers }

// Step derives the next generation of g and returns only the cells that
// change. g is read, never written: every neighbor count observes the same
// prior generation, and the caller commits the result with ApplyDelta.
// Positions are reported in row-major order regardless of parallelism.
func (e *Engine) Step(g *core.Grid) core.Delta {
	w, h := g.Width(), g.Height()
	cells := g.Cells()

	bands := e.workers
	if bands > h {
		bands = h
	}
	if bands <= 1 {
		return stepRows(cells, w, h, 0, h)
	}

	rowsPerBand := (h + bands - 1) / bands
	parts := make([]core.Delta, bands)
	var eg errgroup.Group
	for i := 0; i < bands; i++ {
		from := i * rowsPerBand
		to := min(from+rowsPerBand, h)
		if from >= h {
			break
		}
		eg.Go(func() error {
			parts[i] = stepRows(cells, w, h, from, to)
			return nil
		})
	}
	_ = eg.Wait()

	var out core.Delta
	for _, p := range parts {
		out.Activated = append(out.Activated, p.Activated...)
		out.Deactivated = append(out.Deactivated, p.Deactivated...)
	}
	return out
}

// stepRows classifies rows [from, to) against the unmodified cells slice.
func stepRows(cells []uint8, w, h, from, to int) core.Delta {
	var d core.Delta
	for row := from; row < to; row++ {
		for col := 0; col < w; col++ {
			neighbors := 0
			for _, p := range core.Neighbors(row, col, w, h) {
				neighbors += int(cells[p.Row*w+p.Col])
			}
			alive := cells[row*w+col] != 0
			switch {
			case alive && (neighbors < 2 || neighbors > 3):
				d.Deactivated = append(d.Deactivated, core.Pos{Row: row, Col: col})
			case !alive && neighbors == 3:
				d.Activated = append(d.Activated, core.Pos{Row: row, Col: col})
			}
		}
	}
	return d
}
