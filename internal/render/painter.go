//go:build ebiten

package render

import (
	"image"

	"quadmatch/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one ebiten image in sync with the board.
type GridPainter struct {
	size  core.Size
	geom  Geometry
	frame *image.RGBA
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size, geom Geometry) *GridPainter {
	b := geom.Bounds(size)
	return &GridPainter{
		size:  size,
		geom:  geom,
		frame: NewFrameImage(size, geom),
		img:   ebiten.NewImage(b.Dx(), b.Dy()),
	}
}

// Blit rasterizes the frame, uploads it and draws it at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, f core.Frame) {
	if f.Size != gp.size {
		return
	}
	Rasterize(gp.frame, f, gp.geom)
	gp.img.WritePixels(gp.frame.Pix)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.geom.Bounds(gp.size)
	return b.Dx(), b.Dy()
}
