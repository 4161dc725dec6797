package engine

import (
	"fmt"
	"testing"

	"quadmatch/internal/core"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws so placements are exact.
type scriptedSource struct {
	vals []int
	pos  int
}

func script(vals ...int) *scriptedSource { return &scriptedSource{vals: vals} }

func (s *scriptedSource) IntN(n int) int {
	if s.pos >= len(s.vals) {
		panic("scripted source exhausted")
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d outside [0,%d)", v, n))
	}
	return v
}

// cube returns the draws placing one cube of color c at (x, y) with the
// default palette.
func cube(x, y int, c core.Color) []int { return []int{x, y, int(c)} }

func cubes(draws ...[]int) *scriptedSource {
	var all []int
	for _, d := range draws {
		all = append(all, d...)
	}
	return script(all...)
}

func newTestEngine(t *testing.T, w, h int, src core.Source) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	e, err := NewWithSource(cfg, src)
	require.NoError(t, err)
	return e
}

func paint(e *Engine, c core.Color, pts ...core.Point) {
	for _, p := range pts {
		e.grid.Set(p.X, p.Y, core.Filled(c))
	}
}

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

// findMatch returns the anchor of any uniform filled 2x2 block.
func findMatch(e *Engine) (core.Point, bool) {
	for y := 0; y <= e.grid.H-2; y++ {
		for x := 0; x <= e.grid.W-2; x++ {
			if e.blockMatches(x, y) {
				return pt(x, y), true
			}
		}
	}
	return core.Point{}, false
}
