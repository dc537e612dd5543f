package search

import (
	"container/heap"

	"github.com/katalvlaran/lvsearch/algebra"
)

// frontier is the open set: a binary min-heap of node handles with an
// auxiliary state → heap position index, so each state has at most one
// active entry and its key can be decreased in O(log n).
//
// frontier implements heap.Interface; callers use insert, popMin,
// decreaseKey, contains and empty instead of the heap methods.
type frontier[S comparable, A any, T any] struct {
	arena   *arena[S, A, T]
	alg     algebra.Algebra[T]
	handles []int
	pos     map[S]int
}

func newFrontier[S comparable, A any, T any](a *arena[S, A, T], alg algebra.Algebra[T]) *frontier[S, A, T] {
	return &frontier[S, A, T]{
		arena: a,
		alg:   alg,
		pos:   make(map[S]int),
	}
}

// Len returns the number of active entries.
func (f *frontier[S, A, T]) Len() int { return len(f.handles) }

// Less orders entries by the engine's node ordering.
func (f *frontier[S, A, T]) Less(i, j int) bool {
	hi, hj := f.handles[i], f.handles[j]

	return before(f.alg, f.arena.at(hi), f.arena.at(hj), hi, hj)
}

// Swap swaps two entries and keeps the position index current.
func (f *frontier[S, A, T]) Swap(i, j int) {
	f.handles[i], f.handles[j] = f.handles[j], f.handles[i]
	f.pos[f.arena.at(f.handles[i]).state] = i
	f.pos[f.arena.at(f.handles[j]).state] = j
}

// Push appends a handle; called by heap.Push only.
func (f *frontier[S, A, T]) Push(x any) {
	h := x.(int)
	f.pos[f.arena.at(h).state] = len(f.handles)
	f.handles = append(f.handles, h)
}

// Pop removes the last handle; called by heap.Pop only.
func (f *frontier[S, A, T]) Pop() any {
	old := f.handles
	n := len(old)
	h := old[n-1]
	f.handles = old[:n-1]
	delete(f.pos, f.arena.at(h).state)

	return h
}

// insert queues node h. If its state already has an active entry, that
// entry is replaced (see decreaseKey).
func (f *frontier[S, A, T]) insert(h int) {
	if f.decreaseKey(f.arena.at(h).state, h) {
		return
	}
	heap.Push(f, h)
}

// decreaseKey replaces the active entry of state with node h and restores
// heap order. It reports false, changing nothing, when state is not queued.
func (f *frontier[S, A, T]) decreaseKey(state S, h int) bool {
	i, ok := f.pos[state]
	if !ok {
		return false
	}
	f.handles[i] = h
	heap.Fix(f, i)

	return true
}

// popMin removes and returns the handle with the best priority.
func (f *frontier[S, A, T]) popMin() (int, bool) {
	if len(f.handles) == 0 {
		return noParent, false
	}

	return heap.Pop(f).(int), true
}

// contains reports whether state has an active entry.
func (f *frontier[S, A, T]) contains(state S) bool {
	_, ok := f.pos[state]

	return ok
}

// empty reports whether no entries remain.
func (f *frontier[S, A, T]) empty() bool { return len(f.handles) == 0 }
