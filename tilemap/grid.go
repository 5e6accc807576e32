package tilemap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NewGrid creates an empty width×height registry. Tiles are added with AddTile.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) memory for the arena.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	slots := make([]int, width*height)
	for i := range slots {
		slots[i] = -1
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, 0, width*height),
		slots:  slots,
	}, nil
}

// FromRows builds a grid from equal-length text rows. Each rune is one tile;
// runes equal to solid mark solid tiles. Tiles are inserted row-major, so the
// resulting IDs satisfy ID = y*Width + x.
// Returns ErrEmptyGrid for no rows or an empty first row,
// ErrNonRectangular if any row length differs.
func FromRows(rows []string, solid rune) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			g.AddTile(Pos(x, y), r == solid)
			x++
		}
	}

	return g, nil
}

// AddTile appends a tile at pos and assigns it the next sequential ID.
// Out-of-range and duplicate positions are accepted without error: the tile
// is always recorded, but only the first in-bounds tile for a cell occupies
// that cell's arena slot.
// Complexity: O(1) amortized.
func (g *Grid) AddTile(pos Position, solid bool) Tile {
	t := Tile{Position: pos, ID: len(g.tiles), Solid: solid}
	g.tiles = append(g.tiles, t)
	if g.InBounds(pos.X, pos.Y) {
		if i := g.Index(pos.X, pos.Y); g.slots[i] < 0 {
			g.slots[i] = t.ID
		}
	}

	return t
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of tiles added so far.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Tiles returns a copy of the tiles in insertion order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)

	return out
}

// TileAt returns the tile with the given ID.
// Complexity: O(1).
func (g *Grid) TileAt(id int) (Tile, bool) {
	if id < 0 || id >= len(g.tiles) {
		return Tile{}, false
	}

	return g.tiles[id], true
}

// TileByPosition returns the first inserted tile whose position equals pos.
// Complexity: O(N), a plain linear scan.
func (g *Grid) TileByPosition(pos Position) (Tile, bool) {
	for _, t := range g.tiles {
		if t.Position == pos {
			return t, true
		}
	}

	return Tile{}, false
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Cell returns the tile occupying arena slot idx.
func (g *Grid) Cell(idx int) (Tile, bool) {
	if idx < 0 || idx >= len(g.slots) || g.slots[idx] < 0 {
		return Tile{}, false
	}

	return g.tiles[g.slots[idx]], true
}

// Walkable reports whether (x,y) is in bounds, has a tile, and that tile is
// not solid.
// Complexity: O(1).
func (g *Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	t, ok := g.Cell(g.Index(x, y))

	return ok && !t.Solid
}

// SetSolid changes the solidity of the tile at pos. It is meant for the map
// owner between searches, never during one.
func (g *Grid) SetSolid(pos Position, solid bool) error {
	if !g.InBounds(pos.X, pos.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	id := g.slots[g.Index(pos.X, pos.Y)]
	if id < 0 {
		return fmt.Errorf("%w: %v", ErrMissingTile, pos)
	}
	g.tiles[id].Solid = solid

	return nil
}

// Validate checks the row-major contract: exactly Width×Height tiles, every
// cell filled, and every tile ID equal to its row-major index. The search does
// not call it; callers that depend on IDs doubling as grid indices can.
// Complexity: O(W×H).
func (g *Grid) Validate() error {
	if want := g.width * g.height; len(g.tiles) != want {
		return fmt.Errorf("%w: have %d, want %d", ErrTileCount, len(g.tiles), want)
	}
	for idx, id := range g.slots {
		if id < 0 {
			x, y := g.Coordinate(idx)
			return fmt.Errorf("%w: %v", ErrMissingTile, Pos(x, y))
		}
	}
	for _, t := range g.tiles {
		if !g.InBounds(t.Position.X, t.Position.Y) {
			return fmt.Errorf("%w: tile %d at %v", ErrOutOfBounds, t.ID, t.Position)
		}
		if idx := g.Index(t.Position.X, t.Position.Y); idx != t.ID {
			return fmt.Errorf("%w: tile %d at %v has index %d", ErrTileOrder, t.ID, t.Position, idx)
		}
	}

	return nil
}

// String renders the grid one row per line: '.' walkable, '#' solid,
// '?' for cells without a tile.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t, ok := g.Cell(g.Index(x, y))
			switch {
			case !ok:
				sb.WriteByte('?')
			case t.Solid:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
