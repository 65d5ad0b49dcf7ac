//go:build ebiten

package render

import (
	"image/color"

	"torus-life/internal/core"
	"torus-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in step with a board by applying deltas.
// It is a life.Observer; Apply and Draw must run on the game loop goroutine.
type GridPainter struct {
	buf *Buffer
	img *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{buf: NewBuffer(w, h, on, off), img: ebiten.NewImage(w, h)}
}

// Apply records the delta in the pixel buffer.
func (gp *GridPainter) Apply(d core.Delta, _ life.Snapshot) {
	gp.buf.Apply(d)
}

// Reload repaints the image from a full board snapshot.
func (gp *GridPainter) Reload(cells []uint8) {
	gp.buf.Fill(cells)
}

// Draw uploads pending changes and draws the board scaled to cell size.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.buf.Dirty() {
		gp.img.WritePixels(gp.buf.Pixels())
		gp.buf.MarkClean()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.buf.Size() }
