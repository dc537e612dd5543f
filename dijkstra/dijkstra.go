package dijkstra

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid, a negative weight is detected, or
//     the run was interrupted (ErrInterrupted).
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source and Target, if set (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) || (cfg.Target != "" && !g.HasVertex(cfg.Target)) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	route, err := core.NewRoute(g, cfg.Source, cfg.Target)
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 4) Run the engine
	r := &runner{g: g, options: cfg}
	res, err := r.run(route)
	if err != nil {
		return nil, nil, err
	}

	return r.collect(res)
}

// runner holds the configuration of a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
}

// run searches the walled route. MaxDistance becomes an admission filter,
// so vertices past the cap are never queued.
func (r *runner) run(route *core.Route) (*search.Result[string, *core.Edge, int64], error) {
	opts := append([]search.Option{search.WithLabel("dijkstra")}, r.options.Search...)
	var p problem.Problem[string, *core.Edge, int64] = route
	if r.options.InfEdgeThreshold != math.MaxInt64 {
		p = walled{Route: route, threshold: r.options.InfEdgeThreshold}
	}

	s := search.New(p, opts...)
	if r.options.Target == "" {
		s.Exhaustive = true
	}
	if limit := r.options.MaxDistance; limit != math.MaxInt64 {
		s.Admit = func(_ string, d int64) bool { return d <= limit }
	}

	res, err := s.Run(r.options.Context)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	switch res.Outcome {
	case search.Cancelled, search.BudgetExhausted:
		return nil, fmt.Errorf("%w: %s", ErrInterrupted, res.Outcome)
	}

	return res, nil
}

// collect converts the search tree into distance and predecessor maps.
func (r *runner) collect(res *search.Result[string, *core.Edge, int64]) (map[string]int64, map[string]string, error) {
	vertices := r.g.Vertices()
	dist := make(map[string]int64, len(vertices))

	// the search tree already holds every predecessor, so MemoryMode has
	// nothing to save and prev is built only on request
	var prev map[string]string
	if r.options.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}

	tree := res.Tree()
	for _, v := range vertices {
		dist[v] = math.MaxInt64
		if prev != nil {
			prev[v] = ""
		}
		if !tree.Finalized(v) {
			continue
		}
		dist[v], _ = tree.Cost(v)
		if prev != nil {
			prev[v], _ = tree.Parent(v)
		}
	}

	return dist, prev, nil
}

// walled hides edges whose weight reaches the impassable threshold.
type walled struct {
	*core.Route
	threshold int64
}

func (w walled) Transitions(from string) iter.Seq[problem.Transition[string, *core.Edge]] {
	return func(yield func(problem.Transition[string, *core.Edge]) bool) {
		for tr := range w.Route.Transitions(from) {
			if tr.Action.Weight >= w.threshold {
				continue
			}
			if !yield(tr) {
				return
			}
		}
	}
}
