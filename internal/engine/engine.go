package engine

import (
	"fmt"

	"quadmatch/internal/core"
)

// Engine owns one board: its grid, the pending selection and the random
// source used for cube placement. It is not safe for concurrent use.
type Engine struct {
	cfg  Config
	grid *core.CellGrid
	sel  core.Selection

	src core.Source
	rng *core.RNG

	// seed is the value the RNG was last seeded with.
	seed int64

	lastCleared WinningSet
	lastPlaced  []core.Point
}

// NewWithConfig validates cfg and returns an engine seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*Engine, error) {
	rng := core.NewRNG(cfg.Seed)
	e, err := NewWithSource(cfg, rng)
	if err != nil {
		return nil, err
	}
	e.rng = rng
	return e, nil
}

// MustNew is NewWithConfig for configs known to be valid.
func MustNew(cfg Config) *Engine {
	e, err := NewWithConfig(cfg)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return e
}

// NewWithSource returns an engine drawing positions and colors from src.
// Reset does not reseed an external source.
func NewWithSource(cfg Config, src core.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("invalid board config: nil random source")
	}
	cfg.Palette = append([]core.Color(nil), cfg.Palette...)
	return &Engine{
		cfg:  cfg,
		grid: core.NewCellGrid(cfg.Width, cfg.Height),
		src:  src,
		seed: cfg.Seed,
	}, nil
}

// Name returns the board preset name.
func (e *Engine) Name() string { return e.cfg.Name }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells returns a copy of the grid in row-major order.
func (e *Engine) Cells() []core.Cell { return e.grid.Snapshot() }

// At returns the cell at (x, y).
func (e *Engine) At(x, y int) core.Cell { return e.grid.At(x, y) }

// Selection returns the pending source cell, if any.
func (e *Engine) Selection() core.Selection { return e.sel }

// LastCleared returns the winning set of the most recent resolve pass.
func (e *Engine) LastCleared() WinningSet { return e.lastCleared }

// LastPlaced returns the coordinates filled by the most recent refill.
func (e *Engine) LastPlaced() []core.Point {
	return append([]core.Point(nil), e.lastPlaced...)
}

// FilledCount returns the number of cubes on the board.
func (e *Engine) FilledCount() int { return e.grid.Filled() }

// Stalled reports whether a refill could no longer find enough empty cells.
// Front ends should stop issuing moves once this is true.
func (e *Engine) Stalled() bool { return e.grid.Vacant() < e.cfg.RefillCount }

// Frame copies the state a view needs to draw.
func (e *Engine) Frame() core.Frame {
	return core.Frame{
		Size:      e.grid.Size(),
		Cells:     e.grid.Snapshot(),
		Selection: e.sel,
		Cleared:   e.lastCleared.Points(),
	}
}

// Reset reseeds an engine-owned RNG and starts a fresh board. A zero seed
// falls back to the configured seed.
func (e *Engine) Reset(seed int64) {
	if e.rng != nil {
		if seed == 0 {
			seed = e.cfg.Seed
		}
		e.rng.Seed(seed)
		e.seed = seed
	}
	e.Initialize()
}

// Initialize empties the board and places the opening cubes. Fewer than four
// cubes cannot complete a 2x2 block, so a resolve pass only runs for larger
// refill counts.
func (e *Engine) Initialize() core.Frame {
	e.grid.Clear()
	e.sel = core.Selection{}
	e.lastCleared = WinningSet{}
	e.lastPlaced = e.placeCubes(e.cfg.RefillCount)
	if e.cfg.RefillCount >= 4 {
		e.Resolve()
	}
	return e.Frame()
}

// HandleClick applies one click at grid coordinate (x, y). Clicking a cube
// selects it; clicking an empty cell moves the selected cube there, resolves
// matches and, when nothing matched, refills and resolves once more.
//
// It panics if (x, y) is outside the grid.
func (e *Engine) HandleClick(x, y int) Move {
	if !e.grid.InBounds(x, y) {
		panic(fmt.Sprintf("engine: click (%d,%d) outside %dx%d board", x, y, e.grid.W, e.grid.H))
	}
	to := core.Point{X: x, Y: y}
	target := e.grid.At(x, y)
	if !target.IsEmpty() {
		e.sel = core.SelectionAt(to)
		return Move{Outcome: Selected, To: to}
	}
	from, ok := e.sel.Get()
	if !ok {
		return Move{Outcome: Ignored, To: to}
	}

	e.grid.Set(x, y, e.grid.At(from.X, from.Y))
	e.grid.Set(from.X, from.Y, core.Empty)
	e.sel = core.Selection{}

	mv := Move{Outcome: Swapped, From: from, To: to}
	cleared := e.Resolve()
	if cleared.Len() == 0 {
		mv.Placed = e.Refill()
		cleared = e.Resolve()
	}
	mv.Cleared = cleared
	return mv
}

// Click is HandleClick for callers that only redraw from state.
func (e *Engine) Click(x, y int) { e.HandleClick(x, y) }

// Parameters reports board settings and live counts for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", e.cfg.Width),
				core.IntParam("h", "Height", e.cfg.Height),
				core.IntParam("refill", "Cubes per refill", e.cfg.RefillCount),
				core.ColorsParam("colors", "Palette", e.cfg.Palette),
				core.Int64Param("seed", "Seed", e.seed),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("filled", "Cubes", e.grid.Filled()),
				core.IntParam("vacant", "Empty cells", e.grid.Vacant()),
				core.IntParam("cleared", "Last cleared", e.lastCleared.Len()),
			},
		},
	}}
}

func init() {
	for name, preset := range presets {
		preset := preset
		core.Register(name, func(cfg map[string]string) core.Board {
			return MustNew(ApplyMap(preset(), cfg))
		})
	}
}
