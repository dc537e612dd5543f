package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

// Searcher runs best-first search over one problem. Its exported fields
// select the strategy; all of them are optional:
//
//	s := search.New(p, search.WithMaxExpansions(10_000))
//	s.Heuristic = manhattan      // A*
//	s.Goal = func(st Cell) bool { return st.Y == 0 }
//	res, err := s.Run(ctx)
//
// A Searcher may be reused for several runs; each run allocates fresh
// frontier, registry and arena. It must not be used by two goroutines at
// the same time.
type Searcher[S comparable, A any, T any] struct {
	// Heuristic estimates the remaining cost. nil means uniform-cost search.
	Heuristic problem.Heuristic[S, T]

	// Goal accepts goal states in addition to Problem.GoalState.
	Goal problem.GoalPredicate[S]

	// Admit, when set, filters successors: returning false drops the
	// transition into state with accumulated cost g (cost caps, walls).
	Admit func(state S, g T) bool

	// OnPush is called whenever a node is queued or replaces a queued one.
	OnPush func(state S, g, priority T)

	// OnExpand is called when a state is finalized, before its transitions
	// are enumerated. A non-nil error aborts the run with ErrHookAborted.
	OnExpand func(state S, g T) error

	// Exhaustive ignores every goal test and runs until the frontier is
	// empty, producing the full shortest-path tree.
	Exhaustive bool

	problem problem.Problem[S, A, T]
	opts    Options
}

// New returns a Searcher for p configured by opts.
func New[S comparable, A any, T any](p problem.Problem[S, A, T], opts ...Option) *Searcher[S, A, T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Searcher[S, A, T]{problem: p, opts: o}
}

// Options returns a copy of the Searcher's options.
func (s *Searcher[S, A, T]) Options() Options { return s.opts }

// Run executes the search to completion on the calling goroutine.
//
// The returned error is non-nil only for invalid input (ErrNilProblem,
// ErrNilAlgebra, ErrOptionViolation) or when OnExpand fails
// (ErrHookAborted). Every other ending, including "no path", is reported
// through Result.Outcome.
func (s *Searcher[S, A, T]) Run(ctx context.Context) (*Result[S, A, T], error) {
	st, err := s.Stepper(ctx)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := st.Step(); !ok {
			break
		}
	}

	return st.Result()
}

// runner holds the mutable state of a single search run.
type runner[S comparable, A any, T any] struct {
	s        *Searcher[S, A, T]
	p        problem.Problem[S, A, T]
	alg      algebra.Algebra[T]
	ctx      context.Context
	arena    *arena[S, A, T]
	open     *frontier[S, A, T]
	closed   *registry[S]
	goal     S
	hasGoal  bool
	runID    string
	start    time.Time
	deadline time.Time // zero when no Timeout
	stats    Stats

	done     bool
	outcome  Outcome
	terminal int // goal handle when outcome == Found
	err      error
}

// newRunner validates the searcher and prepares a run.
func newRunner[S comparable, A any, T any](ctx context.Context, s *Searcher[S, A, T]) (*runner[S, A, T], error) {
	if s.opts.err != nil {
		return nil, s.opts.err
	}
	if s.problem == nil {
		return nil, ErrNilProblem
	}
	alg := s.problem.Algebra()
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	if ctx == nil {
		ctx = context.Background()
	}

	a := newArena[S, A, T](64)
	r := &runner[S, A, T]{
		s:        s,
		p:        s.problem,
		alg:      alg,
		ctx:      ctx,
		arena:    a,
		open:     newFrontier(a, alg),
		closed:   newRegistry[S](),
		runID:    uuid.NewString(),
		start:    time.Now(),
		terminal: noParent,
	}
	if !s.Exhaustive {
		r.goal, r.hasGoal = s.problem.GoalState()
	}
	if s.opts.Timeout > 0 {
		r.deadline = r.start.Add(s.opts.Timeout)
	}
	r.init()

	return r, nil
}

// init creates the root node from the initial state and queues it.
func (r *runner[S, A, T]) init() {
	start := r.p.InitialState()
	g := r.alg.Identity()
	h := r.arena.root(start, g, r.priority(start, g))
	r.closed.put(start, h)
	r.open.insert(h)
	r.stats.MaxFrontier = 1
}

// priority combines the cost-so-far with the heuristic estimate, if any.
func (r *runner[S, A, T]) priority(state S, g T) T {
	if r.s.Heuristic == nil {
		return g
	}

	return r.alg.Combine(g, r.s.Heuristic(state))
}

// isGoal applies the goal state and the goal predicate.
func (r *runner[S, A, T]) isGoal(state S) bool {
	if r.s.Exhaustive {
		return false
	}
	if r.hasGoal && state == r.goal {
		return true
	}

	return r.s.Goal != nil && r.s.Goal(state)
}

// interrupted checks cancellation and the wall-clock budget at the top of
// an iteration. The expansion budget is checked later, in step, so that a
// goal already at the front of the frontier is still accepted.
func (r *runner[S, A, T]) interrupted() (Outcome, bool) {
	if r.ctx.Err() != nil {
		return Cancelled, true
	}
	if r.s.opts.Stop != nil && r.s.opts.Stop() {
		return Cancelled, true
	}
	if !r.deadline.IsZero() && !time.Now().Before(r.deadline) {
		return BudgetExhausted, true
	}

	return 0, false
}

// step runs loop iterations until one state is finalized or the search
// terminates. It returns the handle of the finalized node, or false once
// the run is over.
func (r *runner[S, A, T]) step() (int, bool) {
	for !r.done {
		if outcome, stop := r.interrupted(); stop {
			r.finish(outcome)
			return noParent, false
		}

		h, ok := r.open.popMin()
		if !ok {
			r.finish(NoPath)
			return noParent, false
		}
		state := r.arena.at(h).state

		if r.isGoal(state) {
			r.closed.finalize(state, h)
			r.terminal = h
			r.finish(Found)
			return h, true
		}
		if limit := r.s.opts.MaxExpansions; limit > 0 && r.stats.Expanded >= limit {
			r.finish(BudgetExhausted)
			return noParent, false
		}

		r.closed.finalize(state, h)
		if err := r.expand(h); err != nil {
			r.err = err
			r.finish(Cancelled)
			return noParent, false
		}

		return h, true
	}

	return noParent, false
}

// expand enumerates the transitions of node h and relaxes each successor.
// A successor replaces the known node for its state only when its cost is
// strictly better, so equal-cost rediscoveries keep the first path.
func (r *runner[S, A, T]) expand(h int) error {
	cur := *r.arena.at(h)
	r.stats.Expanded++

	if r.s.OnExpand != nil {
		if err := r.s.OnExpand(cur.state, cur.g); err != nil {
			return fmt.Errorf("%w at %v: %w", ErrHookAborted, cur.state, err)
		}
	}

	for tr := range r.p.Transitions(cur.state) {
		r.stats.Generated++
		if r.closed.isFinalized(tr.To) {
			continue
		}

		g := r.alg.Combine(cur.g, r.p.Cost(cur.state, tr.To, tr.Action))
		if r.s.Admit != nil && !r.s.Admit(tr.To, g) {
			continue
		}

		known, seen := r.closed.get(tr.To)
		if seen && r.alg.Compare(g, r.arena.at(known).g) >= 0 {
			continue
		}

		f := r.priority(tr.To, g)
		child := r.arena.child(h, tr, g, f)
		r.closed.put(tr.To, child)
		r.open.insert(child)
		if seen {
			r.stats.Improved++
		}
		if r.s.OnPush != nil {
			r.s.OnPush(tr.To, g, f)
		}
	}
	if n := r.open.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}

	return nil
}

// finish records the terminal outcome.
func (r *runner[S, A, T]) finish(outcome Outcome) {
	r.done = true
	r.outcome = outcome
	r.stats.Duration = time.Since(r.start)
}

// result builds the Result of a finished run.
func (r *runner[S, A, T]) result() *Result[S, A, T] {
	res := &Result[S, A, T]{
		RunID:   r.runID,
		Outcome: r.outcome,
		Stats:   r.stats,
		tree:    &Tree[S, A, T]{arena: r.arena, closed: r.closed},
	}
	if r.outcome == Found {
		res.Path, res.Actions = r.arena.path(r.terminal)
		res.Cost = r.arena.at(r.terminal).g
	}

	return res
}

// report summarizes the run without type parameters.
func (r *runner[S, A, T]) report() Report {
	rep := Report{
		RunID:   r.runID,
		Label:   r.s.opts.Label,
		Outcome: r.outcome,
		Stats:   r.stats,
	}
	if r.outcome == Found {
		rep.PathLen = r.arena.at(r.terminal).depth + 1
	}

	return rep
}
