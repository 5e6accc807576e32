package astar

import "github.com/katalvlaran/tilepath/tilemap"

// LegacyHeuristic is the quotient distance of the older tile-map solver: each
// coordinate is divided by the grid dimension (integer division, truncating)
// before the Manhattan difference is taken. For positions inside
// a width×height grid every quotient is zero, so the search degenerates to a
// uniform-cost search. Width and height must be positive.
func LegacyHeuristic(width, height int) Heuristic {
	return func(from, to tilemap.Position) int64 {
		dx := from.X/width - to.X/width
		dy := from.Y/height - to.Y/height

		return int64(abs(dx) + abs(dy))
	}
}

// ManhattanHeuristic returns |dx|+|dy| scaled by the step cost. Admissible
// for 4-directional movement with that cost.
func ManhattanHeuristic(cost int64) Heuristic {
	return func(from, to tilemap.Position) int64 {
		return cost * int64(abs(from.X-to.X)+abs(from.Y-to.Y))
	}
}

// OctileHeuristic returns the exact cost of an unobstructed 8-directional
// move: min(|dx|,|dy|) diagonal steps plus the remainder in orthogonal steps.
func OctileHeuristic(orthogonal, diagonal int64) Heuristic {
	return func(from, to tilemap.Position) int64 {
		dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}

		return diagonal*int64(lo) + orthogonal*int64(hi-lo)
	}
}

// ZeroHeuristic always returns 0, turning the search into Dijkstra's algorithm.
func ZeroHeuristic() Heuristic {
	return func(tilemap.Position, tilemap.Position) int64 { return 0 }
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
