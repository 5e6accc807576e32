package tilemap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/tilemap"
)

// TestRegions_Orthogonal checks a 4×3 map with orthogonal adjacency.
//
// Map ('#' = solid):
//
//	#..#
//	..##
//	##..
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Orthogonal(t *testing.T) {
	g, err := tilemap.FromRows([]string{
		"#..#",
		"..##",
		"##..",
	}, '#')
	require.NoError(t, err)

	regions := g.Regions(false)
	require.Len(t, regions, 2)

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)

	assert.True(t, g.Connected(tilemap.Pos(1, 0), tilemap.Pos(0, 1), false))
	assert.False(t, g.Connected(tilemap.Pos(1, 1), tilemap.Pos(2, 2), false))
}

// TestRegions_Diagonal joins corner-touching cells into one region.
//
//	.###.
//	#.#.#
//	##.##
//	#.#.#
//	.###.
func TestRegions_Diagonal(t *testing.T) {
	g, err := tilemap.FromRows([]string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}, '#')
	require.NoError(t, err)

	assert.Len(t, g.Regions(false), 9)
	regions := g.Regions(true)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 9)

	assert.True(t, g.Connected(tilemap.Pos(0, 0), tilemap.Pos(4, 4), true))
	assert.False(t, g.Connected(tilemap.Pos(0, 0), tilemap.Pos(4, 4), false))
}

func TestRegions_EdgeCases(t *testing.T) {
	solid, err := tilemap.FromRows([]string{"##", "##"}, '#')
	require.NoError(t, err)
	assert.Empty(t, solid.Regions(true))

	single, err := tilemap.FromRows([]string{"#."}, '#')
	require.NoError(t, err)
	regions := single.Regions(false)
	require.Len(t, regions, 1)
	assert.Equal(t, []int{1}, regions[0])

	// solid or out-of-grid ends are never connected
	assert.False(t, single.Connected(tilemap.Pos(0, 0), tilemap.Pos(1, 0), true))
	assert.False(t, single.Connected(tilemap.Pos(1, 0), tilemap.Pos(2, 0), true))
	assert.True(t, single.Connected(tilemap.Pos(1, 0), tilemap.Pos(1, 0), true))
}
