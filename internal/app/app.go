//go:build ebiten

package app

import (
	"time"

	"quadmatch/internal/core"
	"quadmatch/internal/render"
	"quadmatch/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	board   core.Board
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	geom    render.Geometry

	seed int64
}

// New constructs a Game for the provided board.
func New(board core.Board, geom render.Geometry, seed int64) *Game {
	return &Game{
		board:   board,
		painter: render.NewGridPainter(board.Size(), geom),
		hud:     ui.NewHUD(board, ui.PanelWidth),
		overlay: ui.NewOverlay(geom),
		geom:    geom,
		seed:    seed,
	}
}

// Reset starts a fresh board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Reset(seed)
}

// Update handles keyboard shortcuts and forwards left clicks to the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if p, ok := render.CellAt(px, py, g.board.Size(), g.geom); ok {
			Apply(g.board, p)
		}
	}

	g.hud.Update()
	return nil
}

// Draw renders the board, the debug overlay and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.board.Frame()
	g.painter.Blit(screen, f)
	g.overlay.Draw(screen, f)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + ui.PanelWidth, max(h, ui.PanelMinHeight)
}
