package core

// Grid stores binary cell states of a fixed toroidal board in row-major order.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates a width x height grid with every cell dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &SizeError{Width: width, Height: height}
	}
	return &Grid{w: width, h: height, data: make([]uint8, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice for renderers. Callers must not write to it.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return &BoundsError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	return nil
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (State, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return State(g.data[g.Index(row, col)]), nil
}

// Set writes the state at (row, col).
func (g *Grid) Set(row, col int, s State) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.data[g.Index(row, col)] = uint8(s)
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (State, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	idx := g.Index(row, col)
	g.data[idx] ^= 1
	return State(g.data[idx]), nil
}

// Clear sets every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Alive lists the live cells in row-major order.
func (g *Grid) Alive() []Pos {
	var out []Pos
	for i, c := range g.data {
		if c != 0 {
			out = append(out, Pos{Row: i / g.w, Col: i % g.w})
		}
	}
	return out
}

// ApplyDelta commits a transition: activated cells become alive, then
// deactivated cells become dead. Every position is validated first, so a
// delta with an out-of-range entry leaves the grid untouched.
func (g *Grid) ApplyDelta(d Delta) error {
	for _, p := range d.Activated {
		if err := g.check(p.Row, p.Col); err != nil {
			return err
		}
	}
	for _, p := range d.Deactivated {
		if err := g.check(p.Row, p.Col); err != nil {
			return err
		}
	}
	for _, p := range d.Activated {
		g.data[g.Index(p.Row, p.Col)] = 1
	}
	for _, p := range d.Deactivated {
		g.data[g.Index(p.Row, p.Col)] = 0
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]uint8(nil), g.data...)}
}
