package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

func TestExpandIsland_Row(t *testing.T) {
	cases := []struct {
		name string
		row  []int
		cost int
		path []int
	}{
		{"OneWater", []int{1, 0, 1}, 1, []int{0, 1, 2}},
		{"ThreeWater", []int{1, 0, 0, 0, 1}, 3, []int{0, 1, 2, 3, 4}},
		{"Adjacent", []int{2, 0, 1}, 1, []int{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.From2D([][]int{tc.row}, gridgraph.Conn4)
			require.NoError(t, err)
			path, cost, err := gg.ExpandIsland(0, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)
			assert.Equal(t, tc.path, path)
		})
	}
}

func TestExpandIsland_Grid(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	require.Len(t, path, 4)
	assert.Equal(t, 1, path[0], "starts from the nearer cell of the first island")
	assert.Contains(t, comps[1], path[len(path)-1])
}

func TestExpandIsland_SameComponent(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 1, 0, 1}}, gridgraph.Conn4)
	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []int{0}, path)
}

func TestExpandIsland_BadIndex(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 1}} {
		_, _, err := gg.ExpandIsland(pair[0], pair[1])
		require.ErrorIs(t, err, gridgraph.ErrComponentIndex, "%v", pair)
	}
}
