package core

import "fmt"

// CellGrid stores a 2D grid of cells in row-major order.
type CellGrid struct {
	W, H int
	data []Cell
}

// NewCellGrid allocates an all-empty grid with the given dimensions.
func NewCellGrid(w, h int) *CellGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CellGrid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *CellGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *CellGrid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *CellGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *CellGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). It panics when out of bounds.
func (g *CellGrid) At(x, y int) Cell {
	g.mustContain(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores c at (x, y). It panics when out of bounds.
func (g *CellGrid) Set(x, y int, c Cell) {
	g.mustContain(x, y)
	g.data[g.Index(x, y)] = c
}

// Clear empties every cell.
func (g *CellGrid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Filled counts the non-empty cells.
func (g *CellGrid) Filled() int {
	n := 0
	for _, c := range g.data {
		if c != Empty {
			n++
		}
	}
	return n
}

// Vacant counts the empty cells.
func (g *CellGrid) Vacant() int { return len(g.data) - g.Filled() }

// Snapshot returns a copy of the cells.
func (g *CellGrid) Snapshot() []Cell {
	return append([]Cell(nil), g.data...)
}

func (g *CellGrid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
