package maze

import "math"

// breakLoops opens a fraction of the (rx-1)*(ry-1) walls left after
// construction. Opened walls join region label. open is the number of
// uncarved interior walls; the result is how many were opened.
func breakLoops(g *Grid, l *LabelAllocator, fraction float64, open int, label uint32) int {
	rx, ry := g.Rooms()
	if rx < 1 || ry < 1 {
		return 0
	}
	n := int(float64((rx-1)*(ry-1)) * clamp01(fraction))
	broken := 0
	for ; n > 0 && open > 0; n-- {
		x, y, _ := sampleUncarved(g, l)
		g.Set(x, y, Region(label))
		open--
		broken++
	}
	return broken
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
