package core

import (
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

// Route is the search problem of travelling over a Graph from one vertex
// to another. States are vertex IDs, actions are the traversed edges and
// costs are int64 edge weights (1 per hop on unweighted graphs).
//
// Route implements problem.Problem[string, *Edge, int64].
type Route struct {
	g        *Graph
	from, to string
	hasGoal  bool
	unit     bool
}

var _ problem.Problem[string, *Edge, int64] = (*Route)(nil)

// NewRoute returns the route problem from 'from' to 'to'. An empty 'to'
// leaves the route without a goal, for shortest-path-tree searches.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound, or ErrNegativeWeight when
// any edge of g has a negative weight.
// Complexity: O(E) for the weight scan.
func NewRoute(g *Graph, from, to string) (*Route, error) {
	if g == nil || from == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(from) {
		return nil, ErrVertexNotFound
	}
	if to != "" && !g.HasVertex(to) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
	}

	return &Route{g: g, from: from, to: to, hasGoal: to != "", unit: !g.Weighted()}, nil
}

// InitialState implements problem.Problem.
func (r *Route) InitialState() string { return r.from }

// GoalState implements problem.Problem.
func (r *Route) GoalState() (string, bool) { return r.to, r.hasGoal }

// Transitions enumerates the edges leaving from, in insertion order.
func (r *Route) Transitions(from string) iter.Seq[problem.Transition[string, *Edge]] {
	return func(yield func(problem.Transition[string, *Edge]) bool) {
		edges, err := r.g.Neighbors(from)
		if err != nil {
			return
		}
		for _, e := range edges {
			if !yield(problem.Transition[string, *Edge]{To: e.Other(from), Action: e}) {
				return
			}
		}
	}
}

// Cost is the edge weight, or 1 on unweighted graphs.
func (r *Route) Cost(_, _ string, e *Edge) int64 {
	if r.unit {
		return 1
	}

	return e.Weight
}

// Algebra implements problem.Problem.
func (r *Route) Algebra() algebra.Algebra[int64] { return algebra.Additive[int64]() }
