// Package dijkstra computes single-source shortest paths on a weighted
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra settles vertices in order of increasing distance. It is a thin
//     configuration of the generic search engine: the graph is presented as a
//     core.Route problem, the run is exhaustive unless a Target is given, and
//     the resulting search tree is flattened into distance and predecessor maps.
//   - Ties between equal-cost paths keep the first path discovered, so the
//     predecessor map is deterministic for a given edge insertion order.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: vertices farther than the cap stay unsettled (math.MaxInt64).
//   - InfEdgeThreshold: edges with weight ≥ threshold are impassable walls.
//   - Target: stop as soon as one vertex is settled.
//   - WithSearchOptions: logging, tracing, metrics and budgets of the engine.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); the engine's frontier supports decrease-key,
//     so each vertex holds at most one heap entry.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound:
//     invalid inputs, checked in that order.
//   - ErrNegativeWeight: any negative edge, detected by an O(E) pre-scan.
//   - ErrInterrupted: the context or an engine budget stopped the run.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option
//     constructors.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to B: %d, parent: %s\n", dist["B"], prev["B"])
package dijkstra
