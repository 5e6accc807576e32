package tilemap

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Regions finds all contiguous areas of walkable cells, with or without
// diagonal adjacency. Each region is a slice of row-major cell indices in BFS
// order; regions are listed in row-major order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(diagonal bool) [][]int {
	_, regions := g.label(diagonal)

	return regions
}

// Connected reports whether b can be reached from a over walkable cells.
// Both ends must be walkable. It is a cheap pre-check before a full search:
// a false result means a search between the two would fail.
func (g *Grid) Connected(a, b Position, diagonal bool) bool {
	if !g.Walkable(a.X, a.Y) || !g.Walkable(b.X, b.Y) {
		return false
	}
	labels, _ := g.label(diagonal)

	return labels[g.Index(a.X, a.Y)] == labels[g.Index(b.X, b.Y)]
}

// label flood-fills the walkable cells. labels[i] is the region number of
// cell i, or -1 for cells that are not walkable.
func (g *Grid) label(diagonal bool) ([]int, [][]int) {
	offsets := offsets4
	if diagonal {
		offsets = offsets8
	}
	labels := make([]int, g.width*g.height)
	for i := range labels {
		labels[i] = -1
	}
	var regions [][]int

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.Index(x, y)
			if labels[i0] >= 0 || !g.Walkable(x, y) {
				continue
			}
			id := len(regions)
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.Walkable(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return labels, regions
}
