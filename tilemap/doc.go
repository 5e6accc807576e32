// Package tilemap holds the tile registry a path search runs over: a
// rectangular grid of tiles, each with a position, a sequential ID and a
// solid flag.
//
// What:
//
//   - Grid stores tiles in insertion order (addressable by ID) and in a
//     width×height arena addressed by (x, y).
//   - AddTile appends a tile and assigns the next sequential ID, starting at 0.
//   - TileByPosition resolves a coordinate by a linear scan over the tiles.
//   - Regions / Connected give a flood-fill reachability pre-check.
//
// Why:
//
//   - Tile IDs match row-major order (ID = y*Width + x) when the caller inserts
//     tiles x-fastest, which is how game maps are usually scanned.
//   - Neighbour lookups go through the arena, so a grid filled in any order
//     still resolves adjacency correctly. Validate reports grids that break the
//     row-major contract for callers that rely on IDs.
//
// Complexity:
//
//   - AddTile, TileAt, Walkable: O(1).
//   - TileByPosition:           O(N) over inserted tiles.
//   - Regions:                  O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid:      width or height below one, or no rows.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds:    coordinate outside the grid.
//   - ErrMissingTile:    no tile occupies a slot.
//   - ErrTileCount:      tile count differs from width×height.
//   - ErrTileOrder:      a tile ID does not match its row-major index.
package tilemap
