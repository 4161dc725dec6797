package core

// Size describes the dimensions of a board grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Selection is an optional grid coordinate. The zero value holds nothing.
type Selection struct {
	p  Point
	ok bool
}

// SelectionAt returns a Selection holding p.
func SelectionAt(p Point) Selection { return Selection{p: p, ok: true} }

// Get returns the selected point and whether one is set.
func (s Selection) Get() (Point, bool) { return s.p, s.ok }

// Active reports whether a point is selected.
func (s Selection) Active() bool { return s.ok }

// Frame is a read-only copy of the board state a view draws. Cleared lists
// the cells emptied by the latest resolve pass in row-major order.
type Frame struct {
	Size      Size
	Cells     []Cell
	Selection Selection
	Cleared   []Point
}

// At returns the cell at (x, y).
func (f Frame) At(x, y int) Cell { return f.Cells[y*f.Size.W+x] }

// Board defines the contract a front end drives. Implementations are
// single-threaded: each call runs to completion before the next. Reset with a
// zero seed restarts from the board's configured seed.
type Board interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Click(x, y int)
	Stalled() bool
	Frame() Frame
	Parameters() ParameterSnapshot
}

// Factory constructs a Board using an optional configuration map.
type Factory func(cfg map[string]string) Board

var boards = map[string]Factory{}

// Register adds a board factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	boards[name] = f
}

// Boards exposes the registry of available board factories.
func Boards() map[string]Factory {
	return boards
}
