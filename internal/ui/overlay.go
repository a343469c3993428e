//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mad-maze/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type endpointProvider interface {
	Entrance() maze.Point
	Goal() maze.Point
}

type pathProvider interface {
	Path() []maze.Point
}

// Overlay draws optional markers on top of the maze: the two boundary
// openings (key 1) and the traced path as a line (key 2).
type Overlay struct {
	src       Source
	scale     int
	showEnds  bool
	showTrace bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for src drawn at scale.
func NewOverlay(src Source, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, showEnds: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEnds = !o.showEnds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTrace = !o.showTrace
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showTrace {
		if provider, ok := o.src.(pathProvider); ok {
			thickness := math.Max(1, float64(scale)*0.4)
			for _, s := range pathSegments(provider.Path()) {
				x1, y1 := centre(s.from, scale)
				x2, y2 := centre(s.to, scale)
				o.drawLine(screen, x1, y1, x2, y2, thickness, color.RGBA{R: 255, G: 220, B: 60, A: 220})
			}
		}
	}
	if o.showEnds {
		if provider, ok := o.src.(endpointProvider); ok {
			size := math.Max(3, float64(scale)*1.5)
			x, y := centre(provider.Entrance(), scale)
			o.drawPoint(screen, x, y, size, color.RGBA{R: 60, G: 160, B: 255, A: 230})
			x, y = centre(provider.Goal(), scale)
			o.drawPoint(screen, x, y, size, color.RGBA{R: 80, G: 230, B: 90, A: 230})
		}
	}
}

func centre(p maze.Point, scale int) (float64, float64) {
	return (float64(p.X) + 0.5) * float64(scale), (float64(p.Y) + 0.5) * float64(scale)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		o.drawPoint(screen, x1, y1, thickness, col)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
