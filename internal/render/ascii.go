package render

import (
	"bufio"
	"io"

	"mad-maze/internal/maze"
)

// Glyphs used by WriteASCII.
const (
	GlyphWall = '#'
	GlyphRoom = ' '
	GlyphPath = '.'
)

// Glyph returns the character WriteASCII prints for a cell.
func Glyph(v maze.CellView) rune {
	switch v.Kind {
	case maze.ViewWall:
		return GlyphWall
	case maze.ViewPath:
		return GlyphPath
	default:
		return GlyphRoom
	}
}

// WriteASCII prints v one row per line.
func WriteASCII(w io.Writer, v maze.View) error {
	bw := bufio.NewWriter(w)
	width, height := v.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, err := bw.WriteRune(Glyph(v.CellAt(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
