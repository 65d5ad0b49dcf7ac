//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	rowSpacing     = 16
	groupSpacing   = 8
)

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	helpColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders session statistics and key bindings to the right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the latest snapshot for the next Draw.
func (h *HUD) Update(p core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = p
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, row := range Rows(h.snapshot) {
		if row.Header {
			if y > panelPadding+headerBaseline {
				y += groupSpacing
			}
			text.Draw(h.panel, row.Label, face, panelPadding, y, headerColor)
			y += rowSpacing
			continue
		}
		text.Draw(h.panel, row.Label, face, panelPadding, y, labelColor)
		bounds := text.BoundString(face, row.Value)
		text.Draw(h.panel, row.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
		y += rowSpacing
	}
	y += groupSpacing
	for _, line := range Help {
		text.Draw(h.panel, line, face, panelPadding, y, helpColor)
		y += rowSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
