package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "idempotent")
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected B-A duplicates A-B")

	multi := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err = multi.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "A", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, multi.EdgeCount())
}

func TestNeighbors_Directedness(t *testing.T) {
	und := core.NewGraph(core.WithWeighted())
	_, _ = und.AddEdge("A", "B", 2)
	_, _ = und.AddEdge("C", "A", 5)

	ids, err := und.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
	ids, _ = und.NeighborIDs("B")
	assert.Equal(t, []string{"A"}, ids)
	assert.True(t, und.HasEdge("B", "A"))

	dir := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = dir.AddEdge("A", "B", 2)
	_, _ = dir.AddEdge("B", "A", 3)
	ids, _ = dir.NeighborIDs("A")
	assert.Equal(t, []string{"B"}, ids)
	edges, _ := dir.Neighbors("B")
	require.Len(t, edges, 1)
	assert.Equal(t, int64(3), edges[0].Weight)
	assert.True(t, dir.Directed())

	_, err = dir.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dir.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for range 12 {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}
	var ids []string
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8", "e9", "e10", "e11", "e12"}, ids)

	e, err := g.GetEdge("e10")
	require.NoError(t, err)
	assert.Equal(t, "B", e.Other("A"))
	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	c := g.Clone()
	_, _ = c.AddEdge("B", "C", 1)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, []string{"A", "B", "C"}, c.Vertices())
	assert.True(t, c.Weighted())
	id, err := c.AddEdge("C", "D", 1)
	require.NoError(t, err)
	assert.Equal(t, "e3", id, "clones continue the edge ID sequence")
}

func TestConcurrentAccess(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithDirected(true))
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				_, _ = g.AddEdge(string(rune('a'+w)), string(rune('a'+(w+i)%8)), 0)
				_, _ = g.Neighbors(string(rune('a' + w)))
			}
		}()
	}
	wg.Wait()
	// i%8 == 0 would be a self-loop and is rejected: 7 of every 50 attempts
	assert.Equal(t, 8*(50-7), g.EdgeCount())
}
