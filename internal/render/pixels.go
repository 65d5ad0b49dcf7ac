package render

import (
	"image/color"

	"torus-life/internal/core"
)

// Buffer holds one RGBA pixel per cell and is updated from deltas, so a
// generation costs O(changed) pixel writes instead of a full repaint.
type Buffer struct {
	w, h  int
	pix   []byte
	on    [4]byte
	off   [4]byte
	dirty bool
}

// NewBuffer allocates a buffer for a w x h board painted entirely off.
func NewBuffer(w, h int, on, off color.Color) *Buffer {
	b := &Buffer{w: w, h: h, pix: make([]byte, 4*w*h), on: rgba(on), off: rgba(off)}
	b.Fill(nil)
	return b
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Fill repaints every pixel from binary cell data (0/1). A nil slice paints
// the whole buffer off.
func (b *Buffer) Fill(cells []uint8) {
	for i := 0; i < b.w*b.h; i++ {
		col := b.off
		if i < len(cells) && cells[i] != 0 {
			col = b.on
		}
		copy(b.pix[i*4:i*4+4], col[:])
	}
	b.dirty = true
}

// Apply paints only the cells named by the delta.
func (b *Buffer) Apply(d core.Delta) {
	for _, p := range d.Activated {
		b.set(p, b.on)
	}
	for _, p := range d.Deactivated {
		b.set(p, b.off)
	}
	if !d.Empty() {
		b.dirty = true
	}
}

func (b *Buffer) set(p core.Pos, col [4]byte) {
	if p.Row < 0 || p.Row >= b.h || p.Col < 0 || p.Col >= b.w {
		return
	}
	base := (p.Row*b.w + p.Col) * 4
	copy(b.pix[base:base+4], col[:])
}

// Pixels exposes the RGBA bytes in row-major order.
func (b *Buffer) Pixels() []byte { return b.pix }

// Dirty reports whether pixels changed since the last MarkClean.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean records that the current pixels have been uploaded.
func (b *Buffer) MarkClean() { b.dirty = false }

// Size returns the dimensions of the buffer in cells.
func (b *Buffer) Size() (int, int) { return b.w, b.h }
