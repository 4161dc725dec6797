package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"quadmatch/internal/boardfile"
	"quadmatch/internal/engine"
	"quadmatch/internal/soak"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	games := flag.Int("games", 200, "games to play")
	moves := flag.Int("moves", 2000, "maximum swaps per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first game; later games count up")
	preset := flag.String("board", "classic", "board preset (classic, compact)")
	file := flag.String("file", "", "HCL board file; overrides -board")
	var overrides kvList
	flag.Var(&overrides, "set", "board override in key=value form (repeatable: w, h, refill, colors)")
	flag.Parse()

	cfg, err := boardConfig(*preset, *file)
	if err != nil {
		log.Fatalf("board setup: %v", err)
	}
	set := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q", kv)
			continue
		}
		set[parts[0]] = parts[1]
	}
	cfg = engine.ApplyMap(cfg, set)

	fmt.Printf("Soaking %d games on %dx%d (%d cubes per refill, %d colors, %d workers, %d moves)\n",
		*games, cfg.Width, cfg.Height, cfg.RefillCount, len(cfg.Palette), *workers, *moves)

	start := time.Now()
	report, err := soak.Run(soak.Options{Games: *games, Moves: *moves, Workers: *workers, Seed: *seed, Config: cfg})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	var refills, clears, cleared, peak int
	for _, g := range report.Games {
		refills += g.Refills
		clears += g.Clears
		cleared += g.CellsCleared
		peak = max(peak, g.PeakFilled)
	}

	fmt.Printf("\nDone in %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  mean swaps per game: %.1f\n", report.MeanMoves())
	fmt.Printf("  stalled games:       %d/%d\n", report.StalledGames(), len(report.Games))
	fmt.Printf("  refills:             %d\n", refills)
	fmt.Printf("  clearing passes:     %d (%d cells)\n", clears, cleared)
	fmt.Printf("  peak cubes:          %d/%d\n", peak, cfg.Width*cfg.Height)

	violations := report.Violations()
	if len(violations) == 0 {
		fmt.Println("  invariants:          ok")
		return
	}
	fmt.Printf("  invariant violations: %d\n", len(violations))
	for i, v := range violations {
		if i == 10 {
			fmt.Printf("  ... %d more\n", len(violations)-i)
			break
		}
		fmt.Println("   ", v)
	}
	log.Fatal("soak failed")
}

func boardConfig(preset, file string) (engine.Config, error) {
	base, ok := engine.Preset(preset)
	if !ok {
		return engine.Config{}, fmt.Errorf("unknown board %q", preset)
	}
	if file == "" {
		return base, nil
	}
	return boardfile.Load(file, base)
}
