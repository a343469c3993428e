package render

import "mad-maze/internal/maze"

// fillRGBA converts the cells of v into RGBA pixels in buf, row-major. buf must
// hold 4*w*h bytes.
func fillRGBA(buf []byte, v maze.View) {
	w, h := v.Dimensions()
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			col := ColorOf(v.CellAt(x, y))
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
