package engine

import (
	"fmt"

	"quadmatch/internal/core"
)

// Refill places RefillCount new cubes on random empty cells.
//
// It panics when fewer empty cells remain than the refill count; check
// Stalled first.
func (e *Engine) Refill() []core.Point {
	placed := e.placeCubes(e.cfg.RefillCount)
	e.lastPlaced = placed
	return append([]core.Point(nil), placed...)
}

func (e *Engine) placeCubes(n int) []core.Point {
	if vacant := e.grid.Vacant(); vacant < n {
		panic(fmt.Sprintf("engine: refill needs %d empty cells, only %d left", n, vacant))
	}
	placed := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		placed = append(placed, e.placeCube())
	}
	return placed
}

// placeCube draws x, then y, re-drawing both until the cell is empty, then
// draws the palette index.
func (e *Engine) placeCube() core.Point {
	var x, y int
	for {
		x = e.src.IntN(e.grid.W)
		y = e.src.IntN(e.grid.H)
		if e.grid.At(x, y).IsEmpty() {
			break
		}
	}
	col := e.cfg.Palette[e.src.IntN(len(e.cfg.Palette))]
	e.grid.Set(x, y, core.Filled(col))
	return core.Point{X: x, Y: y}
}
