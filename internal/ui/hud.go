//go:build ebiten

package ui

import (
	"image/color"

	"quadmatch/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor   = color.RGBA{R: 150, G: 170, B: 220, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	warningColor = color.RGBA{R: 255, G: 120, B: 90, A: 255}
)

var keyHints = []string{
	"click: select / move",
	"R: restart  S: new seed",
	"1: coords  2: cleared",
	"Q: quit",
}

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	board    core.Board
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	stalled  bool
	title    string
}

// NewHUD constructs a HUD for the provided board and panel width.
func NewHUD(board core.Board, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{board: board, width: width, title: "quadmatch: " + board.Name()}
}

// Update refreshes the cached parameter snapshot from the board.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshot = h.board.Parameters()
	h.stalled = h.board.Stalled()
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+6, y, labelColor)
			y += lineHeight
		}
	}

	if h.stalled {
		y += lineHeight / 2
		text.Draw(h.panel, "Board full - press R", face, panelPadding, y, warningColor)
		y += lineHeight
	}

	y += lineHeight / 2
	for _, hint := range keyHints {
		text.Draw(h.panel, hint, face, panelPadding, y, hintColor)
		y += lineHeight
	}
}
