// Package core provides a thread-safe in-memory Graph and the Route search
// problem that lets the lvsearch engine walk it.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation ("e1", "e2", …)
//   - Deterministic iteration: Vertices() is sorted, Neighbors() follows
//     edge insertion order, so searches over the graph are reproducible.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only "from→to" adjacency.
//	    Undirected graphs mirror every edge into adjacency[to].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Searching:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 2)
//	r, err := core.NewRoute(g, "A", "B")
//	res, err := search.Dijkstra[string, *core.Edge, int64](ctx, r)
//
// Route costs are edge weights on weighted graphs and 1 per hop on
// unweighted ones, accumulated with algebra.Additive[int64].
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, edges and adjacency. Readers
//	(including running searches) take the read lock per call; mutating a
//	graph while a search runs over it is safe but the search may observe
//	either version of the changed adjacency.
package core
