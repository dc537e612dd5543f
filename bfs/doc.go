// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// BFS is a thin front end to the search engine: every edge costs one hop
// and the engine runs without a goal, so vertices are finalized in
// increasing distance from the start. Ties at equal depth keep discovery
// order, and each vertex's neighbors are discovered in sorted ID order,
// which makes Order deterministic.
//
// Options:
//
//   - WithContext: cancellation; a cancelled run returns the partial
//     result together with the context error.
//   - WithMaxDepth: vertices deeper than the limit are never enqueued.
//   - WithFilterNeighbor: drop individual curr→neighbor steps.
//   - WithOnEnqueue, WithOnDequeue, WithOnVisit: hooks; an OnVisit error
//     aborts the traversal and is returned wrapped.
//   - WithSearchOptions: engine options (logger, budgets, telemetry).
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph: invalid input.
//   - ErrOptionViolation: an option received an invalid value.
//   - ErrInterrupted: an engine budget stopped the traversal early.
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
package bfs
