package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Total returns the number of cells covered by the size.
func (s Size) Total() int { return s.W * s.H }

// State is the binary state of a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = 0
	// Alive marks a populated cell.
	Alive State = 1
)

// Pos identifies a cell by its 0-indexed row and column.
type Pos struct {
	Row int
	Col int
}

// Delta lists the cells whose state changed during one transition.
type Delta struct {
	Activated   []Pos
	Deactivated []Pos
}

// Empty reports whether the delta carries no changes.
func (d Delta) Empty() bool { return len(d.Activated) == 0 && len(d.Deactivated) == 0 }

// Len returns the number of changed cells.
func (d Delta) Len() int { return len(d.Activated) + len(d.Deactivated) }

// SizeFromViewport derives a grid size from a viewport measured in pixels (or
// terminal columns) and the footprint of a single cell.
func SizeFromViewport(viewW, viewH, cellW, cellH int) (Size, error) {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	s := Size{W: viewW / cellW, H: viewH / cellH}
	if s.W <= 0 || s.H <= 0 {
		return Size{}, &SizeError{Width: s.W, Height: s.H}
	}
	return s, nil
}
