//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"

	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a life.Session to the ebiten.Game interface. Ticks come from a
// FixedStep advanced once per Update, so stepping, painting and input all run
// on the game loop goroutine.
type Game struct {
	session *life.Session
	ctl     *Controller
	clock   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	cell    int
}

// New builds the session for cfg and wires the painter as its observer.
func New(cfg *Config) (*Game, error) {
	lc, err := cfg.LifeConfig(cfg.ViewportW, cfg.ViewportH, cfg.CellSize, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	painter := render.NewGridPainter(lc.Width, lc.Height, color.White, color.Black)
	clock := core.NewFixedStep()
	s, err := life.NewSession(lc, clock, life.WithObserver(painter))
	if err != nil {
		return nil, err
	}
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 1
	}
	return &Game{
		session: s,
		ctl:     NewController(s, cfg.Seed, cfg.Density),
		clock:   clock,
		painter: painter,
		hud:     ui.NewHUD(hudWidth),
		cell:    cell,
	}, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *life.Session { return g.session }

// WindowSize returns the window dimensions needed for board and HUD.
func (g *Game) WindowSize() (int, int) {
	s := g.session.Size()
	return s.W*g.cell + g.hud.Width(), s.H * g.cell
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.do(g.action())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && my >= 0 {
			if err := g.ctl.Click(my/g.cell, mx/g.cell); err != nil && !Rejected(err) {
				// Clicks on the HUD land outside the board.
				var be *core.BoundsError
				if !errors.As(err, &be) {
					log.Printf("toggle: %v", err)
				}
			}
		}
	}

	g.clock.Advance()
	g.hud.Update(g.session.Parameters())
	return nil
}

func (g *Game) action() Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ActionStartStop
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return ActionClear
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return ActionRandomize
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		return ActionFaster
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		return ActionSlower
	}
	return ActionNone
}

func (g *Game) do(a Action) {
	if a == ActionNone {
		return
	}
	if err := g.ctl.Do(a); err != nil && !Rejected(err) {
		log.Printf("action %d: %v", a, err)
	}
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cell)
	s := g.session.Size()
	g.hud.Draw(screen, s.W*g.cell, s.H*g.cell)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
