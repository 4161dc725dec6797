package engine

import (
	"sort"

	"quadmatch/internal/core"
)

// WinningSet is the set of coordinates cleared by one resolve pass. The zero
// value is an empty set.
type WinningSet struct {
	cells map[core.Point]struct{}
}

func (w *WinningSet) add(p core.Point) {
	if w.cells == nil {
		w.cells = make(map[core.Point]struct{}, 4)
	}
	w.cells[p] = struct{}{}
}

// Len returns the number of distinct cells in the set. Zero means no match.
func (w WinningSet) Len() int { return len(w.cells) }

// Contains reports whether p was part of a match.
func (w WinningSet) Contains(p core.Point) bool {
	_, ok := w.cells[p]
	return ok
}

// Points lists the set in row-major order.
func (w WinningSet) Points() []core.Point {
	out := make([]core.Point, 0, len(w.cells))
	for p := range w.cells {
		out = append(out, p)
	}
	sortRowMajor(out)
	return out
}

func sortRowMajor(pts []core.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}

// Outcome classifies what a click did.
type Outcome uint8

const (
	// Ignored means an empty cell was clicked with nothing selected.
	Ignored Outcome = iota
	// Selected means a filled cell became the selection.
	Selected
	// Swapped means the selected cube moved into the clicked empty cell.
	Swapped
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Swapped:
		return "swapped"
	default:
		return "ignored"
	}
}

// Move reports the effect of a single HandleClick call.
type Move struct {
	Outcome Outcome
	From    core.Point
	To      core.Point

	// Cleared holds the latest resolve pass: the post-refill pass when a
	// refill happened, otherwise the post-swap pass.
	Cleared WinningSet
	// Placed lists refill coordinates in placement order; nil when the swap
	// itself produced a match.
	Placed []core.Point
}

// Refilled reports whether the move triggered a refill.
func (m Move) Refilled() bool { return len(m.Placed) > 0 }
