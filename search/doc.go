// Package search implements a generic best-first search engine over any
// problem.Problem: uniform-cost (Dijkstra), A*, breadth-first and full
// shortest-path-tree computations are all configurations of one loop.
//
// Overview:
//
//   - Nodes live in a per-search arena and refer to their predecessor by
//     integer handle, so path reconstruction never chases owning pointers.
//   - The frontier is an indexed binary heap keyed by the node priority
//     (cost-so-far combined with the heuristic estimate). It holds at most
//     one active entry per state; a cheaper node for a queued state replaces
//     the old entry in place (decrease-key).
//   - The registry maps each discovered state to its best node and marks a
//     state finalized exactly when it is popped for expansion. Finalized
//     states are never expanded again.
//   - Every accumulation and comparison goes through the problem's
//     algebra.Algebra, so the engine works for any totally ordered cost type.
//
// Ordering and ties:
//
//	Nodes are ordered by priority under the algebra. Equal priorities
//	prefer the larger cost-so-far (smaller remaining estimate), then the
//	earlier-created node. A successor replaces a known node only when its
//	cost is strictly better; on ties the first-discovered path wins, so
//	results are deterministic for a deterministic transition order.
//
// Algorithm sketch:
//
//	push(root)
//	while frontier not empty:
//	    check cancellation and the time budget
//	    n := popMin()
//	    if goal(n.state): return path(n)
//	    check the expansion budget
//	    finalize(n.state)
//	    for each transition t of n.state (lazily):
//	        g := Combine(n.g, cost(t))
//	        if t.To unknown or g strictly better: replace node, push/decrease-key
//	return no-path
//
// Outcomes:
//
//	Found, NoPath, Cancelled (context or WithStop) and BudgetExhausted
//	(WithMaxExpansions or WithTimeout) are ordinary result values. Errors
//	are reserved for invalid input (ErrNilProblem, ErrNilAlgebra,
//	ErrOptionViolation) and for hook failures (ErrHookAborted).
//
// Concurrency:
//
//	A Searcher runs synchronously on the calling goroutine and its
//	structures are never shared, so independent searches may run in
//	parallel; RunAll does exactly that with a bounded errgroup.
//
// Observability:
//
//	Each run opens an OpenTelemetry span ("search.Run"), records run,
//	expansion and duration instruments, and writes one structured slog
//	record. WithReport hands a per-run Report to callers such as the
//	metrics package.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V discovered states and E generated transitions.
//   - Space: O(V + I) where I is the number of cost improvements (arena entries).
package search
