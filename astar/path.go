package astar

import "github.com/katalvlaran/tilepath/tilemap"

// reconstruct walks parent links from terminal back to start and returns the
// visited positions in travel order. The start node itself is not included,
// so a route between adjacent cells has exactly one element and a terminal
// equal to start yields an empty path.
func reconstruct(g *tilemap.Grid, terminal, start *node) []tilemap.Position {
	path := make([]tilemap.Position, 0, 16)
	for n := terminal; n != nil && n != start; n = n.parent {
		x, y := g.Coordinate(n.cell)
		path = append(path, tilemap.Pos(x, y))
	}
	// reverse to get start → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
