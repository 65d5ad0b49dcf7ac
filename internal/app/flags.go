package app

import (
	"flag"
	"runtime"

	"torus-life/internal/core"
	"torus-life/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int

	ViewportW int
	ViewportH int
	CellSize  int

	DelayMs int
	Workers int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ViewportW: 1280,
		ViewportH: 720,
		CellSize:  20,
		DelayMs:   1000,
		Workers:   runtime.NumCPU(),
		Seed:      42,
		Density:   0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells (0 derives it from the viewport)")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells (0 derives it from the viewport)")
	fs.IntVar(&c.ViewportW, "viewport-w", c.ViewportW, "viewport width used to size the board")
	fs.IntVar(&c.ViewportH, "viewport-h", c.ViewportH, "viewport height used to size the board")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.DelayMs, "delay", c.DelayMs, "milliseconds between generations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to count neighbors")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fills")
}

// LifeConfig resolves the board size and returns the session configuration.
// Explicit -w/-h win; otherwise the viewport is divided into cells of
// cellW x cellH units.
func (c *Config) LifeConfig(viewW, viewH, cellW, cellH int) (life.Config, error) {
	lc := life.DefaultConfig()
	lc.DelayMs = c.DelayMs
	lc.Workers = c.Workers
	if c.Width > 0 && c.Height > 0 {
		lc.Width, lc.Height = c.Width, c.Height
		return lc, nil
	}
	size, err := core.SizeFromViewport(viewW, viewH, cellW, cellH)
	if err != nil {
		return life.Config{}, err
	}
	lc.Width, lc.Height = size.W, size.H
	return lc, nil
}
