package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/ui"
)

type scenario struct {
	seed    int64
	density float64
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d density=%.2f", s.seed, s.density)
}

type scenarioResult struct {
	scenario    scenario
	initialLive int
	finalLive   int
	peakLive    int
	settledAt   int
	changed     int
	elapsed     time.Duration
	status      string
}

func main() {
	width := flag.Int("w", 256, "board width")
	height := flag.Int("h", 256, "board height")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run concurrently")
	stepWorkers := flag.Int("step-workers", 1, "goroutines counting neighbors within one scenario")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	cfg.Workers = *stepWorkers

	var sets []scenario
	for _, density := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		for seed := 0; seed < *seeds; seed++ {
			sets = append(sets, scenario{seed: int64(seed), density: density})
		}
	}

	fmt.Printf("Running %d scenarios on %dx%d (%d workers, %d steps, %d step workers)\n",
		len(sets), cfg.Width, cfg.Height, *workers, *steps, cfg.Workers)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := runScenario(cfg, sc, *steps)
				if err != nil {
					log.Printf("%s: %v", sc, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].finalLive > all[j].finalLive })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		settled := "-"
		if res.settledAt >= 0 {
			settled = fmt.Sprint(res.settledAt)
		}
		fmt.Printf("%2d) live %d -> %d peak=%d settled=%s changes=%d step=%s %s\n",
			i+1, res.initialLive, res.finalLive, res.peakLive, settled, res.changed,
			(res.elapsed / time.Duration(max(*steps, 1))).Round(time.Microsecond), res.scenario)
	}
	if len(all) > 0 {
		fmt.Printf("\nMost populated: %s\n  %s\n", all[0].scenario, all[0].status)
	}
}

// runScenario drives a session by hand: the FixedStep scheduler is never
// advanced, so every generation comes from an explicit Tick.
func runScenario(cfg life.Config, sc scenario, steps int) (scenarioResult, error) {
	s, err := life.NewSession(cfg, core.NewFixedStep())
	if err != nil {
		return scenarioResult{}, err
	}
	if err := s.Randomize(sc.seed, sc.density); err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{scenario: sc, initialLive: s.Stats().Live, settledAt: -1}
	res.peakLive = res.initialLive

	if err := s.Start(); err != nil {
		return scenarioResult{}, err
	}
	begin := time.Now()
	for i := 0; i < steps; i++ {
		d, err := s.Tick()
		if err != nil {
			return scenarioResult{}, err
		}
		res.changed += d.Len()
		if d.Empty() {
			res.settledAt = i + 1
			break
		}
		if live := s.Stats().Live; live > res.peakLive {
			res.peakLive = live
		}
	}
	res.elapsed = time.Since(begin)
	res.status = ui.StatusLine(s.Parameters())
	if err := s.Stop(); err != nil {
		return scenarioResult{}, err
	}
	res.finalLive = s.Stats().Live
	return res, nil
}
