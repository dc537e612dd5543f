package problemfile

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Solve runs the file's algorithm from start to goal. The file limits are
// applied first, so opts may override them.
func (f *File) Solve(ctx context.Context, opts ...search.Option) (*Summary, error) {
	opts = append(f.Limits.options(), opts...)

	switch f.Kind {
	case KindGraph:
		r, err := f.Graph.route(true)
		if err != nil {
			return nil, err
		}
		return solve[string, *core.Edge, int64](ctx, f, r, nil, vertexName, int64Cost, opts)
	case KindGrid:
		p, err := f.Grid.problem(true)
		if err != nil {
			return nil, err
		}
		return solve[gridgraph.Point, gridgraph.Move, float64](ctx, f, p, p.Heuristic(), gridgraph.Point.String, floatCost, opts)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalid, f.Kind)
	}
}

// Tree computes the shortest-path tree from the start state, ignoring any
// goal. Entries are in finalization order, so costs never decrease. An
// interrupted search returns the partial tree together with its outcome.
func (f *File) Tree(ctx context.Context, opts ...search.Option) ([]TreeEntry, search.Outcome, error) {
	opts = append(f.Limits.options(), opts...)

	switch f.Kind {
	case KindGraph:
		r, err := f.Graph.route(false)
		if err != nil {
			return nil, 0, err
		}
		res, err := search.ShortestPathTree[string, *core.Edge, int64](ctx, r, opts...)
		if err != nil {
			return nil, 0, err
		}
		return treeEntries(res, vertexName, int64Cost), res.Outcome, nil
	case KindGrid:
		p, err := f.Grid.problem(false)
		if err != nil {
			return nil, 0, err
		}
		res, err := search.ShortestPathTree[gridgraph.Point, gridgraph.Move, float64](ctx, p, opts...)
		if err != nil {
			return nil, 0, err
		}
		return treeEntries(res, gridgraph.Point.String, floatCost), res.Outcome, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown kind %q", ErrInvalid, f.Kind)
	}
}

func vertexName(s string) string  { return s }
func int64Cost(c int64) float64   { return float64(c) }
func floatCost(c float64) float64 { return c }
func intCost(c int) float64       { return float64(c) }

func solve[S comparable, A any, T any](
	ctx context.Context,
	f *File,
	p problem.Problem[S, A, T],
	h problem.Heuristic[S, T],
	name func(S) string,
	cost func(T) float64,
	opts []search.Option,
) (*Summary, error) {
	switch f.Algorithm {
	case AStar:
		if h == nil {
			h = problem.ZeroHeuristic[S](p.Algebra())
		}
		res, err := search.AStar(ctx, p, h, opts...)
		if err != nil {
			return nil, err
		}
		return summarize(f, res, name, cost), nil
	case BreadthFirst:
		res, err := search.BreadthFirst(ctx, p, opts...)
		if err != nil {
			return nil, err
		}
		return summarize(f, res, name, intCost), nil
	default:
		res, err := search.Dijkstra(ctx, p, opts...)
		if err != nil {
			return nil, err
		}
		return summarize(f, res, name, cost), nil
	}
}

func summarize[S comparable, A any, C any](f *File, res *search.Result[S, A, C], name func(S) string, cost func(C) float64) *Summary {
	sum := &Summary{
		Name:      f.Name,
		Algorithm: f.Algorithm,
		RunID:     res.RunID,
		Outcome:   res.Outcome,
		Stats:     res.Stats,
	}
	if res.Found() {
		sum.Path = make([]string, len(res.Path))
		for i, s := range res.Path {
			sum.Path[i] = name(s)
		}
		sum.Cost = cost(res.Cost)
	}

	return sum
}

func treeEntries[S comparable, A any, T any](res *search.Result[S, A, T], name func(S) string, cost func(T) float64) []TreeEntry {
	tree := res.Tree()
	order := tree.Order()
	out := make([]TreeEntry, 0, len(order))
	for _, s := range order {
		e := TreeEntry{State: name(s)}
		if c, ok := tree.Cost(s); ok {
			e.Cost = cost(c)
		}
		if parent, ok := tree.Parent(s); ok {
			e.Parent = name(parent)
		}
		out = append(out, e)
	}

	return out
}

func (l Limits) options() []search.Option {
	var opts []search.Option
	if l.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(l.MaxExpansions))
	}
	if l.Timeout > 0 {
		opts = append(opts, search.WithTimeout(l.Timeout))
	}

	return opts
}

// route builds the graph and the route problem; withGoal false drops the
// goal for tree searches.
func (g *Graph) route(withGoal bool) (*core.Route, error) {
	opts := []core.GraphOption{core.WithDirected(g.Directed)}
	if g.weighted() {
		opts = append(opts, core.WithWeighted())
	}
	var cons []builder.Constructor
	var bopts []builder.BuilderOption
	if g.Generate != nil {
		cons, bopts = append(cons, g.Generate.constructor()), g.Generate.options()
	}
	cg, err := builder.BuildGraph(opts, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cg.AddVertex(g.Start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, e := range g.Edges {
		if _, err := cg.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalid, i, err)
		}
	}

	goal := ""
	if withGoal {
		goal = g.Goal
	}
	r, err := core.NewRoute(cg, g.Start, goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return r, nil
}

// problem builds the grid and its path problem. Without a goal, or with
// withGoal false, the problem has no goal state.
func (g *Grid) problem(withGoal bool) (*gridgraph.PathProblem, error) {
	opts := gridgraph.DefaultGridOptions()
	if g.Threshold != nil {
		opts.LandThreshold = *g.Threshold
	}
	if g.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(g.Cells, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	start := gridgraph.Point{X: g.Start[0], Y: g.Start[1]}
	goal, hasGoal := start, false
	if withGoal && g.Goal != nil {
		goal, hasGoal = gridgraph.Point{X: g.Goal[0], Y: g.Goal[1]}, true
	}
	p, err := gg.NewPathProblem(start, goal, hasGoal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return p, nil
}
