package render

import (
	"image/color"

	"mad-maze/internal/maze"
)

var (
	wallColor = color.RGBA{A: 255}
	pathColor = color.RGBA{R: 255, A: 255}
	unreached = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	goalColor = uint32(0x408000)
	labelMask = uint32(0xFFFFFF)
)

// ColorOf maps a cell to its display colour. Region labels are drawn as their
// 24-bit RGB value; distances shade upward from a green base at the goal.
func ColorOf(v maze.CellView) color.RGBA {
	switch v.Kind {
	case maze.ViewWall:
		return wallColor
	case maze.ViewPath:
		return pathColor
	}
	if !v.Measured {
		return rgb(v.Label)
	}
	if !v.Reached() {
		return unreached
	}
	return rgb(goalColor + v.Label)
}

func rgb(c uint32) color.RGBA {
	c &= labelMask
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}
