package search

import (
	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

// noParent marks the root node's predecessor handle.
const noParent = -1

// node is one search node: a state reached with cost g via action from the
// node at handle parent. Nodes are never mutated after creation; a cheaper
// path to the same state allocates a new node that supersedes this one.
type node[S comparable, A any, T any] struct {
	state  S
	action A
	g      T   // accumulated cost-so-far
	f      T   // priority key: Combine(g, h(state)), or g without heuristic
	parent int // handle of the predecessor, noParent for the root
	depth  int // number of transitions from the root
}

// arena owns every node of one search. Handles are indices into nodes and
// grow monotonically, so a smaller handle means an earlier-created node.
type arena[S comparable, A any, T any] struct {
	nodes []node[S, A, T]
}

func newArena[S comparable, A any, T any](capacity int) *arena[S, A, T] {
	return &arena[S, A, T]{nodes: make([]node[S, A, T], 0, capacity)}
}

// root allocates the root node for state with cost g and priority f.
func (a *arena[S, A, T]) root(state S, g, f T) int {
	a.nodes = append(a.nodes, node[S, A, T]{state: state, g: g, f: f, parent: noParent})

	return len(a.nodes) - 1
}

// child allocates a successor of parent reached through tr.
func (a *arena[S, A, T]) child(parent int, tr problem.Transition[S, A], g, f T) int {
	a.nodes = append(a.nodes, node[S, A, T]{
		state:  tr.To,
		action: tr.Action,
		g:      g,
		f:      f,
		parent: parent,
		depth:  a.nodes[parent].depth + 1,
	})

	return len(a.nodes) - 1
}

// at returns the node for handle h. The pointer is only valid until the
// next allocation.
func (a *arena[S, A, T]) at(h int) *node[S, A, T] { return &a.nodes[h] }

// len returns the number of allocated nodes.
func (a *arena[S, A, T]) len() int { return len(a.nodes) }

// path walks predecessor handles from h back to the root and returns the
// states and actions in root-to-h order. len(actions) == len(states)-1.
func (a *arena[S, A, T]) path(h int) ([]S, []A) {
	depth := a.nodes[h].depth
	states := make([]S, depth+1)
	actions := make([]A, depth)
	for i := depth; h != noParent; i-- {
		n := &a.nodes[h]
		states[i] = n.state
		if i > 0 {
			actions[i-1] = n.action
		}
		h = n.parent
	}

	return states, actions
}

// before reports whether node x must be popped before node y:
//  1. better priority f under alg;
//  2. equal f: larger cost-so-far g (smaller remaining estimate);
//  3. equal g: earlier-created node (smaller handle).
func before[S comparable, A any, T any](alg algebra.Algebra[T], x, y *node[S, A, T], hx, hy int) bool {
	if c := alg.Compare(x.f, y.f); c != 0 {
		return c < 0
	}
	if c := alg.Compare(x.g, y.g); c != 0 {
		return c > 0
	}

	return hx < hy
}
