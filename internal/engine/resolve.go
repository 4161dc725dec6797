package engine

import "quadmatch/internal/core"

// Resolve runs one match pass: every 2x2 block whose cells all hold the
// anchor's color joins the winning set, then the whole set is emptied at
// once. Cells emptied here are not rescanned within the same call.
func (e *Engine) Resolve() WinningSet {
	var won WinningSet
	w, h := e.grid.W, e.grid.H
	for y := 0; y <= h-2; y++ {
		for x := 0; x <= w-2; x++ {
			if !e.blockMatches(x, y) {
				continue
			}
			for dy := 0; dy <= 1; dy++ {
				for dx := 0; dx <= 1; dx++ {
					won.add(core.Point{X: x + dx, Y: y + dy})
				}
			}
		}
	}
	for p := range won.cells {
		e.grid.Set(p.X, p.Y, core.Empty)
	}
	e.lastCleared = won
	return won
}

func (e *Engine) blockMatches(x, y int) bool {
	anchor := e.grid.At(x, y)
	if anchor.IsEmpty() {
		return false
	}
	return e.grid.At(x+1, y) == anchor &&
		e.grid.At(x, y+1) == anchor &&
		e.grid.At(x+1, y+1) == anchor
}
