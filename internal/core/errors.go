package core

import "fmt"

// BoundsError reports a cell coordinate outside the grid.
type BoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of bounds for %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// SizeError reports non-positive grid dimensions.
type SizeError struct {
	Width, Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid grid size %dx%d: width and height must be positive", e.Width, e.Height)
}
