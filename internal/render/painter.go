//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter redraws a whole grid every frame through a single RGBA image
// sized one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Present uploads pixels (4 bytes per cell, row-major) and draws them onto
// dst with each cell scaled to cellW x cellH screen pixels.
func (gp *GridPainter) Present(dst *ebiten.Image, pixels []byte, cellW, cellH int) {
	if len(pixels) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellW), float64(cellH))
	dst.DrawImage(gp.img, op)
}
