package search

import (
	"context"
	"iter"
)

// Expansion describes one finalized state, as produced by Stepper.Step.
type Expansion[S comparable, A any, T any] struct {
	State       S
	Action      A // action that reached State; zero value for the root
	Cost        T // accumulated cost-so-far
	Priority    T // cost combined with the heuristic estimate
	Depth       int
	Goal        bool // State satisfied the goal test; the run is over
	FrontierLen int  // open entries remaining after the expansion
}

// Stepper drives a search one finalized state at a time, for debuggers,
// visualizers and callers interleaving search with other work.
//
// A Stepper owns an open "search.Run" span that ends only when the search
// finishes or Close is called. Callers that may stop stepping before the
// search is over must call Close; deferring it right after Stepper returns
// is always safe.
//
//	st, err := s.Stepper(ctx)
//	if err != nil { ... }
//	defer st.Close()
//	for exp := range st.All() {
//	    fmt.Println(exp.State, exp.Cost)
//	}
//	res, err := st.Result()
type Stepper[S comparable, A any, T any] struct {
	r   *runner[S, A, T]
	tel *telemetry
	res *Result[S, A, T]
}

// Stepper prepares a run without performing any expansion. The caller
// must drive it to completion or call Close.
func (s *Searcher[S, A, T]) Stepper(ctx context.Context) (*Stepper[S, A, T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tel := startTelemetry(ctx, s.opts)
	r, err := newRunner(tel.ctx, s)
	if err != nil {
		tel.fail(err)
		return nil, err
	}
	tel.attach(r.runID)

	return &Stepper[S, A, T]{r: r, tel: tel}, nil
}

// Step finalizes the next state and describes it. It returns false once
// the search is over; the terminal outcome is then available from Result.
// When a goal is reached, Step returns its Expansion with Goal set and
// false on the following call.
func (st *Stepper[S, A, T]) Step() (Expansion[S, A, T], bool) {
	h, ok := st.r.step()
	if st.r.done {
		st.complete()
	}
	if !ok {
		return Expansion[S, A, T]{}, false
	}
	n := st.r.arena.at(h)

	return Expansion[S, A, T]{
		State:       n.state,
		Action:      n.action,
		Cost:        n.g,
		Priority:    n.f,
		Depth:       n.depth,
		Goal:        st.r.outcome == Found && st.r.done && h == st.r.terminal,
		FrontierLen: st.r.open.Len(),
	}, true
}

// All ranges over the remaining expansions.
func (st *Stepper[S, A, T]) All() iter.Seq[Expansion[S, A, T]] {
	return func(yield func(Expansion[S, A, T]) bool) {
		for {
			exp, ok := st.Step()
			if !ok || !yield(exp) {
				return
			}
		}
	}
}

// Done reports whether the search is over.
func (st *Stepper[S, A, T]) Done() bool { return st.r.done }

// Close abandons an unfinished search, recording it as Cancelled. It is a
// no-op on a finished search.
func (st *Stepper[S, A, T]) Close() {
	if st.r.done {
		return
	}
	st.r.finish(Cancelled)
	st.complete()
}

// Result returns the result of a finished search, ErrInProgress before
// that, or the hook error that aborted the run.
func (st *Stepper[S, A, T]) Result() (*Result[S, A, T], error) {
	if !st.r.done {
		return nil, ErrInProgress
	}
	if st.r.err != nil {
		return nil, st.r.err
	}

	return st.res, nil
}

// complete builds the result and flushes telemetry exactly once.
func (st *Stepper[S, A, T]) complete() {
	if st.res != nil || st.tel == nil {
		return
	}
	st.res = st.r.result()
	rep := st.r.report()
	st.tel.finish(rep, st.r.err)
	st.tel = nil
	if fn := st.r.s.opts.OnReport; fn != nil && st.r.err == nil {
		fn(rep)
	}
}
