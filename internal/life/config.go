package life

import (
	"runtime"
	"strconv"
)

// Config holds the parameters a host supplies before a session starts.
type Config struct {
	Width  int
	Height int

	// DelayMs is the interval between generations handed to the scheduler.
	DelayMs int
	// Workers bounds the goroutines used to count neighbors.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   64,
		Height:  36,
		DelayMs: 1000,
		Workers: runtime.NumCPU(),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DelayMs = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
