package app

import "quadmatch/internal/core"

// Apply forwards a click on cell p to the board. Once the board is stalled
// only clicks on cubes are forwarded, since a move into an empty cell could
// need a refill that no longer fits. It reports whether the click was sent.
func Apply(board core.Board, p core.Point) bool {
	size := board.Size()
	if !size.Contains(p.X, p.Y) {
		return false
	}
	if board.Stalled() && board.Frame().At(p.X, p.Y).IsEmpty() {
		return false
	}
	board.Click(p.X, p.Y)
	return true
}
