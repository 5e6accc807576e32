package astar

import (
	"errors"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors returned (or panicked with) by the search.
var (
	// ErrNilGrid indicates a Finder built over a nil grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEmptyGrid indicates a grid with no tiles added.
	ErrEmptyGrid = errors.New("astar: grid has no tiles")

	// ErrSameTile indicates start and end are the same position.
	ErrSameTile = errors.New("astar: start and end are the same tile")

	// ErrStartNotFound indicates the start position does not resolve to a tile
	// inside the grid.
	ErrStartNotFound = errors.New("astar: start tile not found")

	// ErrEndNotFound indicates the end position does not resolve to a tile
	// inside the grid.
	ErrEndNotFound = errors.New("astar: end tile not found")

	// ErrBadEdgeCost indicates a non-positive step cost passed to WithEdgeCosts.
	ErrBadEdgeCost = errors.New("astar: edge costs must be positive")
)

// LegacyCost is the cost of every step, orthogonal or diagonal, under the
// default options.
const LegacyCost int64 = 14

// Heuristic estimates the remaining cost from one position to another.
type Heuristic func(from, to tilemap.Position) int64

// Options configures a Finder.
//
// OrthogonalCost – cost of a horizontal or vertical step (> 0).
// DiagonalCost   – cost of a diagonal step (> 0).
// Heuristic      – nil selects LegacyHeuristic over the grid dimensions.
// CapMaxTiles    – if true, FindPath's maxTiles bounds the number of expansions.
// OnExpand       – called for each node moved to the closed set.
type Options struct {
	OrthogonalCost int64
	DiagonalCost   int64
	Heuristic      Heuristic
	CapMaxTiles    bool
	OnExpand       func(pos tilemap.Position, g, f int64)
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns the legacy configuration:
//   - OrthogonalCost, DiagonalCost: LegacyCost (14).
//   - Heuristic: nil (LegacyHeuristic over the grid dimensions).
//   - CapMaxTiles: false (maxTiles is accepted and ignored).
//   - OnExpand: no-op.
func DefaultOptions() Options {
	return Options{
		OrthogonalCost: LegacyCost,
		DiagonalCost:   LegacyCost,
		Heuristic:      nil,
		CapMaxTiles:    false,
		OnExpand:       func(tilemap.Position, int64, int64) {},
	}
}

// WithEdgeCosts sets the cost of orthogonal and diagonal steps.
// Both must be positive; otherwise the option panics with the string
// ErrBadEdgeCost.Error() when applied. Recover it by comparing against that
// message: unlike FindPath, whose panic value is an error, errors.Is does not
// apply here.
func WithEdgeCosts(orthogonal, diagonal int64) Option {
	return func(o *Options) {
		if orthogonal <= 0 || diagonal <= 0 {
			panic(ErrBadEdgeCost.Error())
		}
		o.OrthogonalCost = orthogonal
		o.DiagonalCost = diagonal
	}
}

// WithHeuristic replaces the heuristic. A nil h keeps the current one.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxTilesCap makes FindPath's maxTiles argument a real limit on the
// number of expanded nodes.
func WithMaxTilesCap() Option {
	return func(o *Options) {
		o.CapMaxTiles = true
	}
}

// WithOnExpand registers a callback run whenever a node is closed.
// Receives the node position, its G cost and its F cost.
func WithOnExpand(fn func(pos tilemap.Position, g, f int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Request describes one search.
type Request struct {
	Start, End tilemap.Position
	Diagonal   bool
	MaxTiles   int
}

// Result holds the outcome of a search:
//   - Found: whether End was reached.
//   - Path: positions after Start up to the terminal node. When Found is false
//     this is the partial route to the last node the search inspected.
//   - Cost: G cost of the goal node (0 when not found).
//   - Expanded: number of nodes moved to the closed set.
type Result struct {
	Found    bool
	Path     []tilemap.Position
	Cost     int64
	Expanded int
}

// node is the search-scoped wrapper around a grid cell.
type node struct {
	cell   int   // row-major arena index
	g      int64 // cost from start
	h      int64 // estimate to goal
	f      int64 // g + h
	parent *node
}
