package astar

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Neighbour offsets in expansion order. Diagonals, when allowed, are tried
// before the orthogonal cells.
var (
	diagonalOffsets   = [][2]int{{1, -1}, {-1, -1}, {-1, 1}, {1, 1}}
	orthogonalOffsets = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// Finder runs path searches over one grid. Its open and closed sets are kept
// between calls and cleared at the start of each search; a Finder must not be
// used concurrently.
type Finder struct {
	grid    *tilemap.Grid
	options Options
	open    []*node
	closed  []*node
}

// NewFinder creates a Finder over grid. The grid is read during each search,
// so changes made by its owner between searches are picked up.
func NewFinder(grid *tilemap.Grid, opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{grid: grid, options: cfg}
}

// FindPath searches for a route from start to end and reports whether end was
// reached, together with the positions after start up to the terminal node.
//
// maxTiles is ignored unless the Finder was built with WithMaxTilesCap.
//
// FindPath panics if a precondition is broken: nil or empty grid,
// start == end, or start/end not resolving to a tile inside the grid. The panic
// value is the error Search would have returned.
func (f *Finder) FindPath(start, end tilemap.Position, diagonal bool, maxTiles int) (bool, []tilemap.Position) {
	res, err := f.Search(Request{Start: start, End: end, Diagonal: diagonal, MaxTiles: maxTiles})
	if err != nil {
		panic(err)
	}

	return res.Found, res.Path
}

// Search runs one search described by req.
//
// Returns:
//
//   - Result with Found == false and a nil error when no route exists.
//   - An error wrapping ErrNilGrid, ErrEmptyGrid, ErrSameTile,
//     ErrStartNotFound or ErrEndNotFound when a precondition is broken.
//
// Complexity: O(V²) time, O(V) space for V walkable cells.
func (f *Finder) Search(req Request) (Result, error) {
	// 1) Reset node sets from the previous call.
	clear(f.open)
	clear(f.closed)
	f.open = f.open[:0]
	f.closed = f.closed[:0]

	// 2) Validate preconditions in order.
	g := f.grid
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if g.Len() == 0 {
		return Result{}, ErrEmptyGrid
	}
	if req.Start == req.End {
		return Result{}, fmt.Errorf("%w: %v", ErrSameTile, req.Start)
	}
	startCell, ok := f.resolve(req.Start)
	if !ok {
		return Result{}, fmt.Errorf("%w: %v", ErrStartNotFound, req.Start)
	}
	goalCell, ok := f.resolve(req.End)
	if !ok {
		return Result{}, fmt.Errorf("%w: %v", ErrEndNotFound, req.End)
	}

	h := f.options.Heuristic
	if h == nil {
		h = LegacyHeuristic(g.Width(), g.Height())
	}
	r := &run{
		Finder:    f,
		heuristic: h,
		goal:      req.End,
		goalCell:  goalCell,
		limit:     0,
	}
	if f.options.CapMaxTiles && req.MaxTiles > 0 {
		r.limit = req.MaxTiles
	}

	// 3) Seed the open set with the start node.
	start := &node{cell: startCell}
	start.h = h(req.Start, req.End)
	start.f = start.g + start.h
	f.open = append(f.open, start)

	// 4) Main loop, then rebuild the route from wherever it stopped.
	current, found := r.loop(req.Diagonal)

	res := Result{
		Found:    found,
		Path:     reconstruct(g, current, start),
		Expanded: r.expanded,
	}
	if found {
		res.Cost = current.g
	}

	return res, nil
}

// resolve maps a position to its arena cell. The tile is looked up by a
// linear scan over the registry and must lie inside the grid.
func (f *Finder) resolve(pos tilemap.Position) (int, bool) {
	t, ok := f.grid.TileByPosition(pos)
	if !ok || !f.grid.InBounds(t.Position.X, t.Position.Y) {
		return 0, false
	}

	return f.grid.Index(pos.X, pos.Y), true
}

// run holds the per-call state that is not kept on the Finder.
type run struct {
	*Finder
	heuristic Heuristic
	goal      tilemap.Position
	goalCell  int
	limit     int // 0 = unlimited
	expanded  int
}

// loop repeatedly selects the cheapest open node and expands it. It returns
// the last node selected and whether that node is the goal.
func (r *run) loop(diagonal bool) (*node, bool) {
	var current *node
	for len(r.open) > 0 {
		// a) Cheapest open node; first minimum wins.
		i := r.smallestF()
		current = r.open[i]

		// b) Goal reached.
		if current.cell == r.goalCell {
			return current, true
		}

		// Expansion budget exhausted.
		if r.limit > 0 && r.expanded >= r.limit {
			return current, false
		}

		// c) Move to closed, keeping the order of the remaining open nodes.
		r.open = slices.Delete(r.open, i, i+1)
		r.closed = append(r.closed, current)
		r.expanded++
		x, y := r.grid.Coordinate(current.cell)
		r.options.OnExpand(tilemap.Pos(x, y), current.g, current.f)

		// d) Expand neighbours.
		if diagonal {
			for _, d := range diagonalOffsets {
				r.visit(current, d[0], d[1], r.options.DiagonalCost)
			}
		}
		for _, d := range orthogonalOffsets {
			r.visit(current, d[0], d[1], r.options.OrthogonalCost)
		}
	}

	return current, false
}

// smallestF returns the index of the open node with the lowest F cost.
// Ties keep the earliest node.
func (r *run) smallestF() int {
	best := 0
	for i := 1; i < len(r.open); i++ {
		if r.open[i].f < r.open[best].f {
			best = i
		}
	}

	return best
}

// visit relaxes the neighbour of parent at offset (dx, dy).
func (r *run) visit(parent *node, dx, dy int, cost int64) {
	p := tilemap.Pos(r.grid.Coordinate(parent.cell)).Add(dx, dy)

	// Off-grid, empty and solid cells are never entered.
	if !r.grid.Walkable(p.X, p.Y) {
		return
	}
	cell := r.grid.Index(p.X, p.Y)

	if indexOf(r.closed, cell) >= 0 {
		return
	}

	g := parent.g + cost
	if i := indexOf(r.open, cell); i >= 0 {
		n := r.open[i]
		if g < n.g {
			n.parent = parent
			n.g = g
			n.f = n.g + n.h
		}
		return
	}

	n := &node{cell: cell, g: g, parent: parent}
	n.h = r.heuristic(p, r.goal)
	n.f = n.g + n.h
	r.open = append(r.open, n)
}

// indexOf returns the position of the node for cell in set, or -1.
func indexOf(set []*node, cell int) int {
	for i, n := range set {
		if n.cell == cell {
			return i
		}
	}

	return -1
}
