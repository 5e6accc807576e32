// Package astar_test verifies that independent Finders can search in parallel.
package astar_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilemap"
)

// TestConcurrentFinders runs one Finder per goroutine, each over its own grid,
// and checks every goroutine sees the single-threaded result.
func TestConcurrentFinders(t *testing.T) {
	rows := []string{
		"........",
		".######.",
		".#....#.",
		".#.##.#.",
		"...#....",
	}
	s, e := tilemap.Pos(0, 0), tilemap.Pos(4, 2)

	want, err := astar.NewFinder(mustRows(t, rows...)).Search(astar.Request{Start: s, End: e, Diagonal: true})
	require.NoError(t, err)
	require.True(t, want.Found)

	const workers = 16
	results := make([]astar.Result, workers)
	errs := make([]error, workers)
	grids := make([]*tilemap.Grid, workers)
	for i := range grids {
		grids[i] = mustRows(t, rows...)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			f := astar.NewFinder(grids[id])
			for round := 0; round < 20; round++ {
				results[id], errs[id] = f.Search(astar.Request{Start: s, End: e, Diagonal: true})
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, want, results[i], "worker %d", i)
	}
}
