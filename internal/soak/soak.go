// Package soak plays seeded random games against the engine and checks the
// board invariants after every click.
package soak

import (
	"fmt"
	"sort"
	"sync"

	"quadmatch/internal/core"
	"quadmatch/internal/engine"
)

// Options controls a soak run.
type Options struct {
	Games   int
	Moves   int
	Workers int
	Seed    int64
	Config  engine.Config
}

// GameResult summarises one game.
type GameResult struct {
	Seed         int64
	Moves        int
	Refills      int
	Clears       int
	CellsCleared int
	PeakFilled   int
	Stalled      bool
	Violations   []string
}

// Report aggregates all games of a run, ordered by seed.
type Report struct {
	Games []GameResult
}

// StalledGames counts games that ran out of room.
func (r Report) StalledGames() int {
	n := 0
	for _, g := range r.Games {
		if g.Stalled {
			n++
		}
	}
	return n
}

// Violations returns every invariant violation found.
func (r Report) Violations() []string {
	var out []string
	for _, g := range r.Games {
		out = append(out, g.Violations...)
	}
	return out
}

// MeanMoves is the average number of swaps per game.
func (r Report) MeanMoves() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Moves
	}
	return float64(total) / float64(len(r.Games))
}

// Run plays opts.Games games across opts.Workers goroutines. Every game owns
// its engine; nothing is shared between workers.
func Run(opts Options) (Report, error) {
	if err := opts.Config.Validate(); err != nil {
		return Report{}, fmt.Errorf("soak config: %w", err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan GameResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- PlayGame(opts.Config, seed, opts.Moves)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < opts.Games; i++ {
			jobs <- opts.Seed + int64(i)
		}
		close(jobs)
	}()

	var report Report
	for res := range results {
		report.Games = append(report.Games, res)
	}
	sort.Slice(report.Games, func(i, j int) bool { return report.Games[i].Seed < report.Games[j].Seed })
	return report, nil
}

// PlayGame plays up to moves swaps on a fresh board: each swap selects a
// random cube and drops it on a random empty cell.
func PlayGame(cfg engine.Config, seed int64, moves int) GameResult {
	cfg.Seed = seed
	e := engine.MustNew(cfg)
	e.Reset(seed)
	rng := core.NewRNG(seed ^ 0x5eed)
	res := GameResult{Seed: seed, PeakFilled: e.FilledCount()}

	for res.Moves < moves {
		if e.Stalled() {
			res.Stalled = true
			break
		}
		cells := e.Cells()
		from, ok := pick(cells, rng, false)
		if !ok {
			break
		}
		to, ok := pick(cells, rng, true)
		if !ok {
			break
		}
		size := e.Size()
		e.HandleClick(from%size.W, from/size.W)
		before := e.Cells()
		filled := e.FilledCount()
		mv := e.HandleClick(to%size.W, to/size.W)
		res.Moves++

		res.Violations = append(res.Violations, check(e, cfg, before, filled, mv)...)
		if mv.Refilled() {
			res.Refills++
		}
		if mv.Cleared.Len() > 0 {
			res.Clears++
			res.CellsCleared += mv.Cleared.Len()
		}
		res.PeakFilled = max(res.PeakFilled, e.FilledCount())
	}
	return res
}

func pick(cells []core.Cell, rng *core.RNG, empty bool) (int, bool) {
	var candidates []int
	for i, c := range cells {
		if c.IsEmpty() == empty {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

func check(e *engine.Engine, cfg engine.Config, before []core.Cell, filled int, mv engine.Move) []string {
	var out []string
	tag := fmt.Sprintf("seed %d", cfg.Seed)
	if mv.Outcome != engine.Swapped {
		return append(out, fmt.Sprintf("%s: click on empty cell %v with selection gave %s", tag, mv.To, mv.Outcome))
	}
	if e.Selection().Active() {
		out = append(out, fmt.Sprintf("%s: selection kept after swap", tag))
	}
	if got, want := e.FilledCount(), filled+len(mv.Placed)-mv.Cleared.Len(); got != want {
		out = append(out, fmt.Sprintf("%s: filled %d, want %d", tag, got, want))
	}
	if mv.Refilled() && len(mv.Placed) != cfg.RefillCount {
		out = append(out, fmt.Sprintf("%s: refill placed %d cubes, want %d", tag, len(mv.Placed), cfg.RefillCount))
	}
	w := e.Size().W
	for _, p := range mv.Placed {
		// before is captured ahead of the swap: From is vacated by it, To is filled.
		if p == mv.To || (p != mv.From && !before[p.Y*w+p.X].IsEmpty()) {
			out = append(out, fmt.Sprintf("%s: refill reused occupied cell %v", tag, p))
		}
	}
	if p, ok := findMatch(e); ok {
		out = append(out, fmt.Sprintf("%s: unresolved match at %v", tag, p))
	}
	return out
}

func findMatch(e *engine.Engine) (core.Point, bool) {
	size := e.Size()
	for y := 0; y <= size.H-2; y++ {
		for x := 0; x <= size.W-2; x++ {
			c := e.At(x, y)
			if c.IsEmpty() {
				continue
			}
			if e.At(x+1, y) == c && e.At(x, y+1) == c && e.At(x+1, y+1) == c {
				return core.Point{X: x, Y: y}, true
			}
		}
	}
	return core.Point{}, false
}
