// Package term hosts a session in a terminal using tcell. Each cell is drawn
// two columns wide; the bottom two rows carry statistics and controls.
package term

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/life"
)

const (
	cellCols   = 2
	statusRows = 2
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

// Host renders a session to a tcell screen and feeds it keyboard and mouse
// input. Generations are driven by an IntervalScheduler; the host is the
// session's observer and redraws only the cells in each delta.
type Host struct {
	screen  tcell.Screen
	session *life.Session
	ctl     *app.Controller
	size    core.Size
	logger  *log.Logger
	buttons tcell.ButtonMask
}

// New sizes the board from the screen and builds its session. The screen
// must already be initialised.
func New(screen tcell.Screen, cfg *app.Config, logger *log.Logger) (*Host, error) {
	if logger == nil {
		logger = log.Default()
	}
	w, h := screen.Size()
	lc, err := cfg.LifeConfig(w, h-statusRows, cellCols, 1)
	if err != nil {
		return nil, fmt.Errorf("size board from %dx%d terminal: %w", w, h, err)
	}
	host := &Host{screen: screen, logger: logger}
	s, err := life.NewSession(lc, core.NewIntervalScheduler(), life.WithObserver(host), life.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	host.session = s
	host.ctl = app.NewController(s, cfg.Seed, cfg.Density)
	host.size = s.Size()
	return host, nil
}

// Session exposes the hosted session.
func (h *Host) Session() *life.Session { return h.session }

// Apply paints a committed delta. It runs with the session locked, on either
// the input goroutine or the scheduler goroutine, and only touches the screen.
func (h *Host) Apply(d core.Delta, s life.Snapshot) {
	for _, p := range d.Activated {
		h.drawCell(p, true)
	}
	for _, p := range d.Deactivated {
		h.drawCell(p, false)
	}
	h.drawStats(s)
	h.screen.Show()
}

// Run processes input until the user quits or the screen is finalised. A
// running session is stopped before Run returns.
func (h *Host) Run() error {
	h.redraw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil || !h.handle(ev) {
			break
		}
	}
	if err := h.session.Stop(); err != nil && !errors.Is(err, life.ErrNotRunning) {
		return err
	}
	return nil
}

// handle processes one event and reports whether the loop should continue.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.redraw()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
		if a := ActionForKey(ev); a != app.ActionNone {
			if err := h.ctl.Do(a); err != nil && !app.Rejected(err) {
				h.logger.Printf("term: action %d: %v", a, err)
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = buttons
		if pressed {
			x, y := ev.Position()
			h.click(y, x/cellCols)
		}
	}
	h.drawControls()
	h.screen.Show()
	return true
}

func (h *Host) click(row, col int) {
	err := h.ctl.Click(row, col)
	var be *core.BoundsError
	switch {
	case err == nil, app.Rejected(err), errors.As(err, &be):
	default:
		h.logger.Printf("term: toggle (%d,%d): %v", row, col, err)
	}
}

// ActionForKey maps a key press to a controller action.
func ActionForKey(ev *tcell.EventKey) app.Action {
	if ev.Key() != tcell.KeyRune {
		if ev.Key() == tcell.KeyEnter {
			return app.ActionStartStop
		}
		return app.ActionNone
	}
	switch ev.Rune() {
	case ' ':
		return app.ActionStartStop
	case 'c', 'C':
		return app.ActionClear
	case 'r', 'R':
		return app.ActionRandomize
	case '+', '=':
		return app.ActionFaster
	case '-', '_':
		return app.ActionSlower
	}
	return app.ActionNone
}

func (h *Host) redraw() {
	h.screen.Clear()
	cells := h.session.Cells()
	for i, c := range cells {
		h.drawCell(core.Pos{Row: i / h.size.W, Col: i % h.size.W}, c != 0)
	}
	h.drawStats(h.session.Stats())
	h.drawControls()
	h.screen.Show()
}

func (h *Host) drawCell(p core.Pos, alive bool) {
	r, style := ' ', deadStyle
	if alive {
		r, style = '█', aliveStyle
	}
	x := p.Col * cellCols
	for i := 0; i < cellCols; i++ {
		h.screen.SetContent(x+i, p.Row, r, nil, style)
	}
}

func (h *Host) drawStats(s life.Snapshot) {
	line := fmt.Sprintf("Total: %d  Live: %d  Dead: %d  Time (s): %s", s.Total, s.Live, s.Dead, s.Elapsed)
	h.drawLine(h.size.H, line, statusStyle)
}

func (h *Host) drawControls() {
	p := h.session.Parameters()
	line := ""
	for _, key := range []string{"state", "delay", "generation"} {
		if param, ok := p.Lookup(key); ok {
			line += fmt.Sprintf("%s: %s  ", param.Label, param.Value)
		}
	}
	line += "| space start/stop  c clear  r random  +/- delay  q quit"
	h.drawLine(h.size.H+1, line, helpStyle)
}

func (h *Host) drawLine(row int, s string, style tcell.Style) {
	w, _ := h.screen.Size()
	col := 0
	for _, r := range s {
		if col >= w {
			break
		}
		h.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		h.screen.SetContent(col, row, ' ', nil, style)
	}
}
