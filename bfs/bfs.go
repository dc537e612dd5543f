package bfs

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// BFS runs breadth-first search on g starting from startID.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// or the wrapped OnVisit error. On cancellation the partial result is
// returned with the context error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	s := search.New[string, struct{}, int](&hops{g: g, start: startID, filter: o.FilterNeighbor},
		append([]search.Option{search.WithLabel("bfs")}, o.Search...)...)
	s.Exhaustive = true
	if limit := o.MaxDepth; limit > 0 {
		s.Admit = func(_ string, depth int) bool { return depth <= limit }
	}
	// unit costs never improve a queued vertex, so OnPush fires once per vertex
	s.OnPush = func(id string, depth, _ int) { o.OnEnqueue(id, depth) }
	s.OnExpand = func(id string, depth int) error {
		o.OnDequeue(id, depth)
		if err := o.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
		return nil
	}

	o.OnEnqueue(startID, 0)
	res, err := s.Run(o.Ctx)
	if err != nil {
		return nil, err
	}

	out := collect(res)
	switch res.Outcome {
	case search.NoPath:
		return out, nil
	case search.Cancelled:
		if err := o.Ctx.Err(); err != nil {
			return out, err
		}
		return out, context.Canceled
	default:
		return out, fmt.Errorf("%w: %s", ErrInterrupted, res.Outcome)
	}
}

// collect turns the engine's search tree into a BFSResult.
func collect(res *search.Result[string, struct{}, int]) *BFSResult {
	tree := res.Tree()
	order := tree.Order()
	out := &BFSResult{
		Order:  order,
		Depth:  make(map[string]int, len(order)),
		Parent: make(map[string]string, len(order)),
	}
	for _, id := range order {
		out.Depth[id], _ = tree.Cost(id)
		if p, ok := tree.Parent(id); ok {
			out.Parent[id] = p
		}
	}

	return out
}

// hops is the unit-cost walk over g, visiting neighbors in sorted order.
type hops struct {
	g      *core.Graph
	start  string
	filter func(curr, neighbor string) bool
}

func (h *hops) InitialState() string { return h.start }

func (h *hops) GoalState() (string, bool) { return "", false }

func (h *hops) Transitions(from string) iter.Seq[problem.Transition[string, struct{}]] {
	return func(yield func(problem.Transition[string, struct{}]) bool) {
		// from is always a vertex of g
		ids, _ := h.g.NeighborIDs(from)
		for _, id := range ids {
			if !h.filter(from, id) {
				continue
			}
			if !yield(problem.Transition[string, struct{}]{To: id}) {
				return
			}
		}
	}
}

func (h *hops) Cost(_, _ string, _ struct{}) int { return 1 }

func (h *hops) Algebra() algebra.Algebra[int] { return algebra.Additive[int]() }
