package search

// Result is the outcome of one search run.
type Result[S comparable, A any, T any] struct {
	// RunID correlates logs, spans and reports of this run.
	RunID string

	// Outcome is Found, NoPath, Cancelled or BudgetExhausted.
	Outcome Outcome

	// Path lists the states from the initial state to the goal. It is nil
	// unless Outcome == Found.
	Path []S

	// Actions[i] is the action taken from Path[i] to Path[i+1].
	Actions []A

	// Cost is the accumulated cost of Path (the algebra identity for the
	// trivial path). Meaningful only when Outcome == Found.
	Cost T

	// Stats counts the work done.
	Stats Stats

	tree *Tree[S, A, T]
}

// Found reports whether a goal was reached.
func (r *Result[S, A, T]) Found() bool { return r.Outcome == Found }

// Tree returns the read-only search tree built by the run. For a
// goal-less (exhaustive) run that finished with NoPath, it is the complete
// shortest-path tree of the reachable space.
func (r *Result[S, A, T]) Tree() *Tree[S, A, T] { return r.tree }

// Tree is a read-only snapshot of the nodes and registry of a finished run.
type Tree[S comparable, A any, T any] struct {
	arena  *arena[S, A, T]
	closed *registry[S]
}

// Len returns the number of discovered states (finalized or not).
func (t *Tree[S, A, T]) Len() int { return t.closed.len() }

// Cost returns the best known cost of state. For finalized states under a
// monotone algebra this is the optimal cost.
func (t *Tree[S, A, T]) Cost(state S) (T, bool) {
	h, ok := t.closed.get(state)
	if !ok {
		var zero T
		return zero, false
	}

	return t.arena.at(h).g, true
}

// Finalized reports whether state was finalized during the run.
func (t *Tree[S, A, T]) Finalized(state S) bool { return t.closed.isFinalized(state) }

// Parent returns the predecessor of state on its best known path.
// ok is false for the initial state and for undiscovered states.
func (t *Tree[S, A, T]) Parent(state S) (parent S, ok bool) {
	h, found := t.closed.get(state)
	if !found {
		return parent, false
	}
	p := t.arena.at(h).parent
	if p == noParent {
		return parent, false
	}

	return t.arena.at(p).state, true
}

// PathTo reconstructs the best known path from the initial state to state.
func (t *Tree[S, A, T]) PathTo(state S) ([]S, []A, bool) {
	h, ok := t.closed.get(state)
	if !ok {
		return nil, nil, false
	}
	states, actions := t.arena.path(h)

	return states, actions, true
}

// Order returns the finalized states in finalization order. Under a
// monotone algebra their costs are non-decreasing.
func (t *Tree[S, A, T]) Order() []S {
	out := make([]S, len(t.closed.order))
	for i, h := range t.closed.order {
		out[i] = t.arena.at(h).state
	}

	return out
}
