package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

func weightedDigraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 1}, {"B", "D", 5}, {"C", "D", 1},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestNewRoute_Validation(t *testing.T) {
	g := weightedDigraph(t)
	_, err := core.NewRoute(nil, "A", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = core.NewRoute(g, "", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = core.NewRoute(g, "X", "B")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = core.NewRoute(g, "A", "X")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _ = g.AddEdge("D", "A", -1)
	_, err = core.NewRoute(g, "A", "D")
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestRoute_Dijkstra(t *testing.T) {
	r, err := core.NewRoute(weightedDigraph(t), "A", "D")
	require.NoError(t, err)

	res, err := search.Dijkstra[string, *core.Edge, int64](context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, search.Found, res.Outcome)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, int64(3), res.Cost)

	ids := make([]string, len(res.Actions))
	for i, e := range res.Actions {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"e1", "e3", "e5"}, ids)
}

func TestRoute_UnweightedCountsHops(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("A", "D", 0)

	r, err := core.NewRoute(g, "D", "B")
	require.NoError(t, err)
	res, err := search.Dijkstra[string, *core.Edge, int64](context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Cost)
	assert.Len(t, res.Path, 3)
}

func TestRoute_Tree(t *testing.T) {
	r, err := core.NewRoute(weightedDigraph(t), "A", "")
	require.NoError(t, err)
	_, ok := r.GoalState()
	assert.False(t, ok)

	res, err := search.ShortestPathTree[string, *core.Edge, int64](context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Tree().Order())
	d, ok := res.Tree().Cost("D")
	require.True(t, ok)
	assert.Equal(t, int64(3), d)
}
