// Package lvsearch is a generic best-first search toolkit: describe a
// problem once (start state, transitions, cost algebra, heuristic) and run
// Dijkstra, A*, or breadth-first search over it, on graphs, grids, or any
// state space you can enumerate.
//
// What is inside?
//
//	algebra/               cost algebras: Combine, Compare, Identity (Additive, Bottleneck, Probability)
//	problem/               Problem, Transition and the optional Heuristic contract
//	search/                the engine: node arena, indexed frontier, Searcher,
//	                       Stepper, Result/Tree, hooks, budgets, telemetry, RunAll
//	core/                  thread-safe Graph (vertices, edges, options) + Route
//	dijkstra/              graph shortest paths on core.Graph, backed by search
//	bfs/                   hop-count traversal with OnEnqueue/OnDequeue/OnVisit hooks
//	gridgraph/             2D grids as graphs: A* paths, components, island expansion
//	builder/               deterministic topologies (path, cycle, star, grid, random)
//	metrics/               Prometheus recorder for search reports
//	internal/problemfile   YAML problem files for the CLI
//	cmd/lvsearch           solve, batch and tree commands
//
// Guarantees:
//
//   - A state is finalized at most once, when it is popped from the frontier.
//   - A frontier entry is replaced only by a strictly better cost; ties keep
//     the first discovered path.
//   - Frontier ties break on f, then larger g, then discovery order, so runs
//     are deterministic.
//   - Budgets and cancellation are checked before every expansion and end the
//     run with a partial Result rather than an error.
//
// Quick example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 1)
//	_, _ = g.AddEdge("B", "C", 2)
//	route, _ := core.NewRoute(g, "A", "C")
//	res, _ := search.Dijkstra[string, *core.Edge, int64](ctx, route)
//	fmt.Println(res.Outcome, res.Cost, res.Path) // found 3 [A B C]
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
