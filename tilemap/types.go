// Package tilemap defines core types and sentinel errors for the tile registry.
package tilemap

import (
	"errors"
	"fmt"
)

// Sentinel errors for tilemap operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilemap: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("tilemap: position out of bounds")
	// ErrMissingTile indicates an arena slot no tile was added for.
	ErrMissingTile = errors.New("tilemap: no tile at position")
	// ErrTileCount indicates the number of tiles differs from Width×Height.
	ErrTileCount = errors.New("tilemap: tile count does not match grid size")
	// ErrTileOrder indicates a tile whose ID is not its row-major index.
	ErrTileOrder = errors.New("tilemap: tile not inserted in row-major order")
)

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is one cell of the map.
type Tile struct {
	Position Position // Grid coordinate
	ID       int      // Sequential insertion index, starting at 0
	Solid    bool     // Solid tiles are never traversable
}

// Grid is the tile registry. Its dimensions are fixed by NewGrid and used
// for adjacency arithmetic only; tiles are supplied by the caller through
// AddTile. The zero value is an empty 0×0 grid that accepts tiles into no
// cell.
//
// A Grid is not safe for concurrent mutation. Concurrent reads are fine once
// it has been populated.
type Grid struct {
	width, height int
	tiles         []Tile // insertion order, index == ID
	slots         []int  // row-major arena: tile ID per cell, -1 when empty
}
