package problem

import (
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
)

// Funcs is a function-table Problem. It lets callers describe a problem
// without declaring a named type:
//
//	p := &problem.Funcs[string, string, int]{
//	    Initial:     "A",
//	    Goal:        "D",
//	    HasGoal:     true,
//	    Successors:  problem.FromSlice(neighbors),
//	    CostFunc:    func(from, to, _ string) int { return weights[from+to] },
//	    Accumulator: algebra.Additive[int](),
//	}
//
// A nil Successors yields no transitions. A nil CostFunc costs every step
// at the algebra's identity.
type Funcs[S comparable, A any, T any] struct {
	Initial     S
	Goal        S
	HasGoal     bool
	Successors  func(from S) iter.Seq[Transition[S, A]]
	CostFunc    func(from, to S, action A) T
	Accumulator algebra.Algebra[T]
}

// InitialState implements Problem.
func (f *Funcs[S, A, T]) InitialState() S { return f.Initial }

// GoalState implements Problem.
func (f *Funcs[S, A, T]) GoalState() (S, bool) { return f.Goal, f.HasGoal }

// Transitions implements Problem.
func (f *Funcs[S, A, T]) Transitions(from S) iter.Seq[Transition[S, A]] {
	if f.Successors == nil {
		return func(func(Transition[S, A]) bool) {}
	}

	return f.Successors(from)
}

// Cost implements Problem.
func (f *Funcs[S, A, T]) Cost(from, to S, action A) T {
	if f.CostFunc == nil {
		return f.Accumulator.Identity()
	}

	return f.CostFunc(from, to, action)
}

// Algebra implements Problem.
func (f *Funcs[S, A, T]) Algebra() algebra.Algebra[T] { return f.Accumulator }

// FromSlice adapts an eager successor function into the lazy form expected
// by Problem.Transitions. The slice is produced on each enumeration and
// iteration stops as soon as the consumer breaks out.
func FromSlice[S comparable, A any](fn func(from S) []Transition[S, A]) func(from S) iter.Seq[Transition[S, A]] {
	return func(from S) iter.Seq[Transition[S, A]] {
		return func(yield func(Transition[S, A]) bool) {
			for _, tr := range fn(from) {
				if !yield(tr) {
					return
				}
			}
		}
	}
}

// WithGoal returns a view of p whose goal state is replaced by goal.
func WithGoal[S comparable, A any, T any](p Problem[S, A, T], goal S) Problem[S, A, T] {
	return &goalOverride[S, A, T]{Problem: p, goal: goal, ok: true}
}

// WithoutGoal returns a view of p that reports no goal state, which makes
// the engine exhaust the reachable space.
func WithoutGoal[S comparable, A any, T any](p Problem[S, A, T]) Problem[S, A, T] {
	return &goalOverride[S, A, T]{Problem: p}
}

type goalOverride[S comparable, A any, T any] struct {
	Problem[S, A, T]
	goal S
	ok   bool
}

func (g *goalOverride[S, A, T]) GoalState() (S, bool) { return g.goal, g.ok }
