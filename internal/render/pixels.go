package render

import (
	"image"
	"image/color"

	"quadmatch/internal/core"
)

var (
	fieldColor     = color.RGBA{A: 255}
	borderColor    = color.RGBA{R: 96, G: 96, B: 104, A: 255}
	highlightColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var palette = [core.NumColors]color.RGBA{
	core.Green:   {G: 255, A: 255},
	core.Red:     {R: 255, A: 255},
	core.Yellow:  {R: 255, G: 255, A: 255},
	core.Blue:    {B: 255, A: 255},
	core.Cyan:    {G: 255, B: 255, A: 255},
	core.Pink:    {R: 255, G: 175, B: 175, A: 255},
	core.Magenta: {R: 255, B: 255, A: 255},
}

// PaletteRGBA returns the display color for a palette entry. Unknown colors
// render as opaque grey.
func PaletteRGBA(c core.Color) color.RGBA {
	if !c.Valid() {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return palette[c]
}

// Geometry fixes the pixel layout of one cell.
type Geometry struct {
	CellSize int
	Inset    int
}

// DefaultGeometry returns 60px cells with cubes inset by 4px.
func DefaultGeometry() Geometry { return Geometry{CellSize: 60, Inset: 4} }

// Bounds returns the pixel size of a board.
func (g Geometry) Bounds(size core.Size) image.Rectangle {
	return image.Rect(0, 0, size.W*g.CellSize, size.H*g.CellSize)
}

// CellRect returns the pixel rectangle covered by cell (x, y).
func (g Geometry) CellRect(x, y int) image.Rectangle {
	return image.Rect(x*g.CellSize, y*g.CellSize, (x+1)*g.CellSize, (y+1)*g.CellSize)
}

// CellAt maps a pointer position to a grid coordinate. The second result is
// false when the pointer is outside the board.
func CellAt(px, py int, size core.Size, g Geometry) (core.Point, bool) {
	if g.CellSize <= 0 || px < 0 || py < 0 {
		return core.Point{}, false
	}
	x, y := px/g.CellSize, py/g.CellSize
	if !size.Contains(x, y) {
		return core.Point{}, false
	}
	return core.Point{X: x, Y: y}, true
}

// NewFrameImage allocates an RGBA buffer large enough for a board.
func NewFrameImage(size core.Size, g Geometry) *image.RGBA {
	return image.NewRGBA(g.Bounds(size))
}

// Rasterize draws the board into img: a dark field with cell borders, one
// inset square per cube and a double outline around the selection. img must
// cover at least g.Bounds(f.Size).
func Rasterize(img *image.RGBA, f core.Frame, g Geometry) {
	if g.CellSize <= 0 || len(f.Cells) != f.Size.W*f.Size.H || !g.Bounds(f.Size).In(img.Bounds()) {
		return
	}
	fillRect(img, g.Bounds(f.Size), fieldColor)

	for y := 0; y < f.Size.H; y++ {
		for x := 0; x < f.Size.W; x++ {
			cell := g.CellRect(x, y)
			strokeRect(img, cell, borderColor)
			col, ok := f.At(x, y).Color()
			if !ok {
				continue
			}
			fillRect(img, cell.Inset(g.Inset), PaletteRGBA(col))
		}
	}

	if p, ok := f.Selection.Get(); ok {
		cell := g.CellRect(p.X, p.Y)
		strokeRect(img, cell.Inset(1), highlightColor)
		strokeRect(img, cell.Inset(2), highlightColor)
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// strokeRect draws a one-pixel outline along the inside edge of r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}
