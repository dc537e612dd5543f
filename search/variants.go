package search

import (
	"context"
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

// Dijkstra runs uniform-cost search: no heuristic, stop at the first goal
// popped. The label defaults to "dijkstra".
func Dijkstra[S comparable, A any, T any](ctx context.Context, p problem.Problem[S, A, T], opts ...Option) (*Result[S, A, T], error) {
	return New(p, labelled("dijkstra", opts)...).Run(ctx)
}

// AStar runs A* with heuristic h. With an admissible and consistent h the
// returned path is optimal. The label defaults to "astar".
func AStar[S comparable, A any, T any](ctx context.Context, p problem.Problem[S, A, T], h problem.Heuristic[S, T], opts ...Option) (*Result[S, A, T], error) {
	s := New(p, labelled("astar", opts)...)
	s.Heuristic = h

	return s.Run(ctx)
}

// BreadthFirst ignores the problem's costs and finds a path with the fewest
// transitions. Ties keep discovery order, so the result matches a FIFO
// breadth-first traversal. Result.Cost is the number of transitions.
func BreadthFirst[S comparable, A any, T any](ctx context.Context, p problem.Problem[S, A, T], opts ...Option) (*Result[S, A, int], error) {
	var unit problem.Problem[S, A, int]
	if p != nil {
		unit = unitCost[S, A, T]{inner: p}
	}

	return New(unit, labelled("bfs", opts)...).Run(ctx)
}

// ShortestPathTree expands every reachable state, ignoring goals, and
// returns the result whose Tree holds the optimal cost and predecessor of
// each state. A complete run ends with Outcome NoPath. The label defaults
// to "tree".
func ShortestPathTree[S comparable, A any, T any](ctx context.Context, p problem.Problem[S, A, T], opts ...Option) (*Result[S, A, T], error) {
	s := New(p, labelled("tree", opts)...)
	s.Exhaustive = true

	return s.Run(ctx)
}

// labelled prepends a default label so the caller's options still win.
func labelled(label string, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, WithLabel(label))

	return append(out, opts...)
}

// unitCost presents a problem with every transition costing 1.
type unitCost[S comparable, A any, T any] struct {
	inner problem.Problem[S, A, T]
}

func (u unitCost[S, A, T]) InitialState() S               { return u.inner.InitialState() }
func (u unitCost[S, A, T]) GoalState() (S, bool)          { return u.inner.GoalState() }
func (u unitCost[S, A, T]) Cost(_, _ S, _ A) int          { return 1 }
func (u unitCost[S, A, T]) Algebra() algebra.Algebra[int] { return algebra.Additive[int]() }

func (u unitCost[S, A, T]) Transitions(from S) iter.Seq[problem.Transition[S, A]] {
	return u.inner.Transitions(from)
}
