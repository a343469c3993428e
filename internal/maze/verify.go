package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Report describes the carved structure of a maze.
type Report struct {
	Rooms       int
	CarvedWalls int
	Components  int
}

// Connected reports whether every room is reachable from every other room.
func (r Report) Connected() bool { return r.Components == 1 }

// Perfect reports whether the carved passages form a spanning tree.
func (r Report) Perfect() bool { return r.Connected() && r.CarvedWalls == r.Rooms-1 }

// Verify counts rooms, opened interior walls and connected room components of
// v. Boundary openings are traversed but not counted as walls.
func Verify(v View) Report {
	w, h := v.Dimensions()
	var r Report
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if IsWall(x, y) && v.CellAt(x, y).Kind != ViewWall {
				r.CarvedWalls++
			}
		}
	}

	seen := mapset.New[Point]()
	for x := 1; x < w; x += 2 {
		for y := 1; y < h; y += 2 {
			r.Rooms++
			start := Point{x, y}
			if seen.Has(start) || v.CellAt(x, y).Kind == ViewWall {
				continue
			}
			r.Components++
			flood(v, start, seen)
		}
	}
	return r
}

func flood(v View, start Point, seen mapset.Set[Point]) {
	w, h := v.Dimensions()
	q := queue.New[Point]()
	seen.Put(start)
	q.Enqueue(start)
	for !q.Empty() {
		p := q.Dequeue()
		for _, o := range neighbors {
			n := Point{p.X + o.X, p.Y + o.Y}
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h || seen.Has(n) {
				continue
			}
			if v.CellAt(n.X, n.Y).Kind == ViewWall {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}
}
