// Package problem defines the closed contract a caller implements to obtain
// a search: initial state, optional goal state, a lazy transition
// enumerator, a per-transition cost function and the cost algebra.
//
// A Problem is pure data and behavior. It carries no algorithm logic, and
// the engine may call its methods in any order and any number of times, so
// every method must be a deterministic, side-effect-free function of its
// inputs. Memoizing expensive transition functions is the problem's job.
package problem

import (
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
)

// Transition is one move out of a state: the successor state and the
// action metadata that produced it. Its cost is not embedded; the engine
// asks Problem.Cost for it.
type Transition[S comparable, A any] struct {
	To     S
	Action A
}

// Problem is the search problem contract over states S, action metadata A
// and costs T.
type Problem[S comparable, A any, T any] interface {
	// InitialState is the state the search starts from.
	InitialState() S

	// GoalState returns the goal, or ok == false when the problem has no
	// goal state (goal predicate or exhaustive search instead).
	GoalState() (goal S, ok bool)

	// Transitions lazily enumerates the moves out of from. The sequence
	// must be finite for every state and may be restarted by calling
	// Transitions again.
	Transitions(from S) iter.Seq[Transition[S, A]]

	// Cost is the cost of the single transition from → to via action.
	Cost(from, to S, action A) T

	// Algebra returns the cost algebra used to accumulate and order costs.
	Algebra() algebra.Algebra[T]
}

// Heuristic estimates the remaining cost from state to the goal. For A*
// optimality it must never be better (under the algebra) than the true
// remaining cost.
type Heuristic[S comparable, T any] func(state S) T

// GoalPredicate accepts goal states. It is an alternative, or an addition,
// to Problem.GoalState.
type GoalPredicate[S comparable] func(state S) bool

// ZeroHeuristic returns the heuristic that always estimates the algebra's
// identity, turning A* into uniform-cost search.
func ZeroHeuristic[S comparable, T any](alg algebra.Algebra[T]) Heuristic[S, T] {
	zero := alg.Identity()

	return func(S) T { return zero }
}

// IsGoal reports whether state equals p's goal state, if p has one.
func IsGoal[S comparable, A any, T any](p Problem[S, A, T], state S) bool {
	goal, ok := p.GoalState()

	return ok && goal == state
}
