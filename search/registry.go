package search

// entry is the registry record of one state.
type entry struct {
	handle    int  // best node found so far
	finalized bool // popped and expanded (or accepted as goal)
}

// registry is the closed set: state → best known node, plus the order in
// which states were finalized.
type registry[S comparable] struct {
	entries map[S]entry
	order   []int // finalized handles, in finalization order
}

func newRegistry[S comparable]() *registry[S] {
	return &registry[S]{entries: make(map[S]entry)}
}

// get returns the best known node handle for state.
func (r *registry[S]) get(state S) (int, bool) {
	e, ok := r.entries[state]

	return e.handle, ok
}

// put records h as the best node for state. A finalized state keeps its
// node; the engine never improves a finalized state.
func (r *registry[S]) put(state S, h int) {
	if e, ok := r.entries[state]; ok && e.finalized {
		return
	}
	r.entries[state] = entry{handle: h}
}

// finalize commits state to node h.
func (r *registry[S]) finalize(state S, h int) {
	r.entries[state] = entry{handle: h, finalized: true}
	r.order = append(r.order, h)
}

// isFinalized reports whether state was finalized.
func (r *registry[S]) isFinalized(state S) bool {
	return r.entries[state].finalized
}

// len returns the number of discovered states.
func (r *registry[S]) len() int { return len(r.entries) }
