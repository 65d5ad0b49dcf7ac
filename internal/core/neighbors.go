package core

// Neighbors returns the 8 toroidally wrapped neighbor positions of (row, col)
// on a width x height grid. Offsets are visited row-major: the row above
// left to right, then left and right, then the row below.
//
// On grids with a dimension of 1 the wrapped positions repeat, and some of
// them are the cell itself. Callers counting neighbors see those duplicates.
func Neighbors(row, col, width, height int) [8]Pos {
	var out [8]Pos
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Pos{
				Row: (row + dr + height) % height,
				Col: (col + dc + width) % width,
			}
			i++
		}
	}
	return out
}
