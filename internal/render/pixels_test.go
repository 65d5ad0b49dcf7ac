package render

import (
	"image/color"
	"testing"

	"torus-life/internal/core"
)

func pixelAt(b *Buffer, row, col int) color.RGBA {
	w, _ := b.Size()
	base := (row*w + col) * 4
	p := b.Pixels()
	return color.RGBA{R: p[base], G: p[base+1], B: p[base+2], A: p[base+3]}
}

func TestBufferStartsOff(t *testing.T) {
	b := NewBuffer(3, 2, color.White, color.Black)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			if got := pixelAt(b, row, col); got != (color.RGBA{A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want opaque black", row, col, got)
			}
		}
	}
	if !b.Dirty() {
		t.Fatal("fresh buffer should need an upload")
	}
}

func TestBufferApplyDelta(t *testing.T) {
	b := NewBuffer(4, 4, color.White, color.Black)
	b.MarkClean()

	b.Apply(core.Delta{})
	if b.Dirty() {
		t.Fatal("empty delta marked the buffer dirty")
	}

	b.Apply(core.Delta{Activated: []core.Pos{{Row: 1, Col: 2}}})
	if got := pixelAt(b, 1, 2); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("activated pixel = %v", got)
	}
	if got := pixelAt(b, 1, 1); got != (color.RGBA{A: 255}) {
		t.Fatalf("untouched pixel = %v", got)
	}
	if !b.Dirty() {
		t.Fatal("delta did not mark the buffer dirty")
	}

	b.Apply(core.Delta{Deactivated: []core.Pos{{Row: 1, Col: 2}, {Row: 9, Col: 9}}})
	if got := pixelAt(b, 1, 2); got != (color.RGBA{A: 255}) {
		t.Fatalf("deactivated pixel = %v", got)
	}
}

func TestBufferFillFromCells(t *testing.T) {
	b := NewBuffer(2, 2, color.White, color.Black)
	b.Fill([]uint8{0, 1, 1, 0})
	if pixelAt(b, 0, 1).R != 255 || pixelAt(b, 1, 0).R != 255 || pixelAt(b, 0, 0).R != 0 {
		t.Fatal("Fill did not follow the cell data")
	}
}
