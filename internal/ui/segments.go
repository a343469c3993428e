package ui

import "mad-maze/internal/maze"

// segment is a straight run of path cells, inclusive at both ends.
type segment struct {
	from, to maze.Point
}

// pathSegments collapses a path into its straight runs so the overlay draws
// one line per run instead of one per cell.
func pathSegments(path []maze.Point) []segment {
	switch len(path) {
	case 0:
		return nil
	case 1:
		return []segment{{from: path[0], to: path[0]}}
	}
	var out []segment
	start := 0
	for i := 1; i < len(path)-1; i++ {
		if direction(path[i-1], path[i]) != direction(path[i], path[i+1]) {
			out = append(out, segment{from: path[start], to: path[i]})
			start = i
		}
	}
	return append(out, segment{from: path[start], to: path[len(path)-1]})
}

func direction(a, b maze.Point) maze.Point {
	return maze.Point{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
