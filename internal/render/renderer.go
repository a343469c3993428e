//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mad-maze/internal/maze"
)

// GridPainter keeps one RGBA image in sync with a maze view.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells of v into the painter image and draws it scaled onto
// dst. Views whose dimensions differ from the painter's are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, v maze.View, scale int) {
	w, h := v.Dimensions()
	if w != gp.w || h != gp.h {
		return
	}
	fillRGBA(gp.buf, v)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
