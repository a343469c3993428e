package maze

import "github.com/zyedidia/generic/stack"

// carver builds a spanning tree over the rooms by merging regions one wall at
// a time.
type carver struct {
	g      *Grid
	labels *LabelAllocator

	regions  int
	open     int
	carved   int
	survivor uint32
}

// newCarver gives every room its own region label.
func newCarver(g *Grid, labels *LabelAllocator) *carver {
	c := &carver{g: g, labels: labels, open: g.WallCount()}
	for x := 1; x < g.W; x += 2 {
		for y := 1; y < g.H; y += 2 {
			id := labels.Next()
			g.Set(x, y, Region(id))
			c.survivor = id
			c.regions++
		}
	}
	return c
}

func (c *carver) done() bool {
	return c.regions <= 1 || c.open == 0
}

// step carves exactly one wall that joins two different regions.
func (c *carver) step() {
	if c.done() {
		return
	}
	for {
		x, y, vertical := sampleUncarved(c.g, c.labels)
		a, b := wallSides(x, y, vertical)
		ca, _ := c.g.At(a.X, a.Y)
		cb, _ := c.g.At(b.X, b.Y)
		if ca.Value == cb.Value {
			continue
		}
		c.g.Set(x, y, Region(cb.Value))
		c.open--
		c.carved++
		relabel(c.g, a, ca.Value, Region(cb.Value))
		c.regions--
		c.survivor = cb.Value
		return
	}
}

// wallSides returns the two rooms separated by the wall at (x, y): left and
// right for a vertical wall, above and below otherwise.
func wallSides(x, y int, vertical bool) (Point, Point) {
	if vertical {
		return Point{x - 1, y}, Point{x + 1, y}
	}
	return Point{x, y - 1}, Point{x, y + 1}
}

// sampleWall picks a random interior wall. The axis is chosen by a coin flip
// unless the grid only has walls on one axis. The grid must hold at least
// one interior wall.
func sampleWall(g *Grid, l *LabelAllocator) (x, y int, vertical bool) {
	rx, ry := g.Rooms()
	vertical = l.Byte()&1 == 1
	if rx < 2 {
		vertical = false
	} else if ry < 2 {
		vertical = true
	}
	if vertical {
		return l.Index(rx-1)*2 + 2, l.Index(ry)*2 + 1, true
	}
	return l.Index(rx)*2 + 1, l.Index(ry-1)*2 + 2, false
}

// sampleUncarved resamples until it lands on an uncarved wall. Callers must
// know that one exists.
func sampleUncarved(g *Grid, l *LabelAllocator) (x, y int, vertical bool) {
	for {
		x, y, vertical = sampleWall(g, l)
		if c, _ := g.At(x, y); c.Kind == KindUncarved {
			return x, y, vertical
		}
	}
}

// relabel replaces every cell of region from that is 4-connected to start
// with to, and returns how many cells changed.
func relabel(g *Grid, start Point, from uint32, to Cell) int {
	if to == Region(from) {
		return 0
	}
	work := stack.New[Point]()
	work.Push(start)
	n := 0
	for work.Size() > 0 {
		p := work.Pop()
		c, ok := g.At(p.X, p.Y)
		if !ok || c.Kind != KindRegion || c.Value != from {
			continue
		}
		g.Set(p.X, p.Y, to)
		n++
		for _, d := range neighbors {
			work.Push(Point{p.X + d.X, p.Y + d.Y})
		}
	}
	return n
}
