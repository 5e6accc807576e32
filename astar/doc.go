// Package astar finds paths between two tiles of a tilemap.Grid with an
// A*-family search over the implicit grid graph.
//
// Overview:
//
//   - A Finder owns an open set (discovered frontier) and a closed set
//     (finalized nodes). Both are plain slices scanned linearly, which keeps the
//     search simple and deterministic on small and medium maps.
//   - Each iteration selects the open node with the smallest F = G + H. Ties go
//     to the first minimum in open-set order, so repeated searches over the same
//     grid return the same path.
//   - Neighbours are the four orthogonal cells, plus the four diagonal cells when
//     diagonal movement is allowed. Solid cells, cells outside the grid and cells
//     without a tile are never entered.
//   - The path is rebuilt by following parent links from the terminal node back
//     to the start node.
//
// Costs and heuristic:
//
//   - By default every step costs 14, orthogonal or diagonal alike. WithEdgeCosts
//     selects a different weighting, e.g. the conventional 10/14.
//   - The default heuristic is LegacyHeuristic: it divides both coordinates by the
//     grid dimensions before taking the Manhattan difference, which is zero for
//     any two in-bounds cells. ManhattanHeuristic and OctileHeuristic are the
//     admissible alternatives for 4- and 8-directional movement.
//
// The maxTiles argument:
//
//   - FindPath accepts maxTiles but ignores it unless the Finder was built with
//     WithMaxTilesCap, in which case at most maxTiles nodes are expanded before
//     the search gives up. maxTiles <= 0 always means no limit.
//
// Error handling:
//
//   - "No path" is a normal outcome: found == false (Result.Found == false), no error.
//   - Broken preconditions are programming errors. Search returns them as errors
//     wrapping ErrNilGrid, ErrEmptyGrid, ErrSameTile, ErrStartNotFound or
//     ErrEndNotFound; FindPath panics with the same error value.
//   - Invalid option values (ErrBadEdgeCost) panic in the option constructor.
//
// Complexity:
//
//   - Time:  O(V²) per search on a grid with V walkable cells (linear scans for
//     "find minimum" and "contains").
//   - Space: O(V) nodes.
//
// Thread safety:
//
//   - A Finder reuses its node sets between calls and resets them on entry, so a
//     single Finder must not be used from several goroutines at once.
//   - Distinct Finders over distinct grids can run in parallel.
//
// Example usage:
//
//	g, _ := tilemap.FromRows([]string{
//	    "...",
//	    ".#.",
//	    "...",
//	}, '#')
//	f := astar.NewFinder(g)
//	found, path := f.FindPath(tilemap.Pos(0, 0), tilemap.Pos(2, 2), false, 0)
package astar
