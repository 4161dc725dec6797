//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"quadmatch/internal/core"
	"quadmatch/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	geom        render.Geometry
	showCoords  bool
	showCleared bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(geom render.Geometry) *Overlay {
	o := &Overlay{geom: geom}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCoords = !o.showCoords
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCleared = !o.showCleared
	}
}

// Draw renders the enabled layers for frame f onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, f core.Frame) {
	size := f.Size
	if o.showCleared {
		for _, p := range f.Cleared {
			o.drawOutline(screen, p, color.RGBA{R: 255, G: 140, B: 40, A: 220})
		}
	}
	if o.showCoords {
		face := basicfont.Face7x13
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				r := o.geom.CellRect(x, y)
				text.Draw(screen, fmt.Sprintf("%d,%d", x, y), face, r.Min.X+3, r.Min.Y+12, color.RGBA{R: 170, G: 170, B: 180, A: 255})
			}
		}
	}
}

func (o *Overlay) drawOutline(screen *ebiten.Image, p core.Point, c color.RGBA) {
	r := o.geom.CellRect(p.X, p.Y).Inset(o.geom.Inset / 2)
	w, h := float64(r.Dx()), float64(r.Dy())
	x, y := float64(r.Min.X), float64(r.Min.Y)
	const thickness = 2
	o.fill(screen, x, y, w, thickness, c)
	o.fill(screen, x, y+h-thickness, w, thickness, c)
	o.fill(screen, x, y, thickness, h, c)
	o.fill(screen, x+w-thickness, y, thickness, h, c)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
