// Package tilepath is a small toolkit for path search on 2D tile maps.
//
// What is inside:
//
//	tilemap/      — tile registry: positions, sequential tile IDs, solid flags,
//	                row-major arena, validation and region flood fill
//	astar/        — A* search engine and path reconstruction over a tilemap.Grid
//	mapfile/      — YAML map documents and ASCII path overlays
//	cmd/tilepath/ — command-line driver for map files
//
// Quick ASCII example:
//
//	S . .
//	. # .
//	. . E
//
// With orthogonal moves the route from S to E is (1,0) (2,0) (2,1) (2,2).
// Without the solid tile and with diagonal moves it is (1,1) (2,2).
//
// The caller owns the map: it decides which tiles are solid, changes them
// between searches, and renders the returned positions.
//
//	go get github.com/katalvlaran/tilepath
package tilepath
