package astar_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilemap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFinder_FindPath routes around a single solid tile.
// Scenario:
//
//	S . .
//	. # .
//	. . E
//
// With orthogonal moves only, the route goes along the top row and down the
// right column: 4 steps.
func ExampleFinder_FindPath() {
	g, _ := tilemap.FromRows([]string{
		"...",
		".#.",
		"...",
	}, '#')
	f := astar.NewFinder(g)

	found, path := f.FindPath(tilemap.Pos(0, 0), tilemap.Pos(2, 2), false, 0)
	fmt.Println(found, path)

	// Output:
	// true [(1,0) (2,0) (2,1) (2,2)]
}

// ExampleFinder_FindPath_diagonal shows the same corner-to-corner search on an
// open grid with diagonal movement: two diagonal steps.
func ExampleFinder_FindPath_diagonal() {
	g, _ := tilemap.FromRows([]string{
		"...",
		"...",
		"...",
	}, '#')
	f := astar.NewFinder(g)

	found, path := f.FindPath(tilemap.Pos(0, 0), tilemap.Pos(2, 2), true, 0)
	fmt.Println(found, path)

	// Output:
	// true [(1,1) (2,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Search with options
////////////////////////////////////////////////////////////////////////////////

// ExampleFinder_Search uses the conventional 10/14 weighting with the octile
// heuristic. One diagonal plus two orthogonal steps cost 34.
func ExampleFinder_Search() {
	g, _ := tilemap.FromRows([]string{
		"....",
		"....",
	}, '#')
	f := astar.NewFinder(g,
		astar.WithEdgeCosts(10, 14),
		astar.WithHeuristic(astar.OctileHeuristic(10, 14)),
	)

	res, err := f.Search(astar.Request{
		Start:    tilemap.Pos(0, 0),
		End:      tilemap.Pos(3, 1),
		Diagonal: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("steps:", len(res.Path))
	fmt.Println("cost:", res.Cost)

	// Output:
	// found: true
	// steps: 3
	// cost: 34
}
