package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/search"
)

type wedge struct {
	from, to string
	w        int64
}

func build(t *testing.T, directed bool, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(core.WithWeighted()))
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// ErrEmptySource has priority over ErrNilGraph
	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	g := build(t, false, wedge{"A", "B", 1})
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _ = g.AddEdge("B", "C", -5)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.ErrorContains(t, err, "B→C weight=-5")
}

func TestDijkstra_OptionPanics(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	require.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_Triangle(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"A", "C", 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Nil(t, prev, "prev is nil without ReturnPath")

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)
}

func TestDijkstra_Directed(t *testing.T) {
	g := build(t, true,
		wedge{"A", "B", 2}, wedge{"A", "C", 1}, wedge{"C", "B", 1},
		wedge{"B", "D", 3}, wedge{"C", "D", 5}, wedge{"E", "A", 1},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(2), dist["B"]) // equal-cost tie: A→B found first
	assert.Equal(t, int64(5), dist["D"])
	assert.Equal(t, int64(math.MaxInt64), dist["E"], "no edge leads back to E")
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "B", prev["D"])
	assert.Equal(t, "", prev["E"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"C", "D", 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": math.MaxInt64, "D": math.MaxInt64}, dist)

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(math.MaxInt64), dist["B"])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 2}, wedge{"B", "C", 4}, wedge{"A", "C", 10})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])

	// a 3×3 lattice whose only way into the centre is walled off
	grid := build(t, false,
		wedge{"0,0", "0,1", 1}, wedge{"0,0", "1,0", 1}, wedge{"0,1", "0,2", 1},
		wedge{"1,0", "2,0", 1}, wedge{"2,1", "2,2", 1},
		wedge{"1,0", "1,1", 5}, wedge{"1,1", "1,2", 5},
	)
	dist, _, err = dijkstra.Dijkstra(grid, dijkstra.Source("0,0"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["1,1"])
	assert.Equal(t, int64(2), dist["2,0"])
}

func TestDijkstra_Target(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"C", "D", 10})
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"), dijkstra.Target("B"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"], "the run stops once B is settled")
	assert.Equal(t, "A", prev["B"])
}

// TestDijkstra_MemoryModes checks that both modes give identical results
// and that prev is returned only with ReturnPath.
func TestDijkstra_MemoryModes(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 2})
	for _, mode := range []dijkstra.MemoryMode{dijkstra.MemoryModeFull, dijkstra.MemoryModeCompact} {
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMemoryMode(mode))
		require.NoError(t, err)
		assert.Nil(t, prev, "mode %d", mode)
		assert.Equal(t, int64(3), dist["C"])

		_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"),
			dijkstra.WithMemoryMode(mode), dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev, "mode %d", mode)
	}
}

func TestDijkstra_Interrupted(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, dijkstra.ErrInterrupted)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"),
		dijkstra.WithSearchOptions(search.WithMaxExpansions(1)))
	require.ErrorIs(t, err, dijkstra.ErrInterrupted)
	require.ErrorContains(t, err, "budget-exhausted")

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"),
		dijkstra.WithSearchOptions(search.WithMaxExpansions(-1)))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestDijkstra_ReportsLabel(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1})
	var label string
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"),
		dijkstra.WithSearchOptions(search.WithReport(func(r search.Report) { label = r.Label })))
	require.NoError(t, err)
	assert.Equal(t, "dijkstra", label)
}
