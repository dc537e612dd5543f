package search_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

// arc is a weighted directed edge of a test graph. The weight doubles as
// the transition action, so Cost simply returns the action.
type arc[S comparable, T any] struct {
	from, to S
	w        T
}

// digraph builds a Funcs problem over an edge list. Successors are
// enumerated in edge-list order. An empty goal means "no goal state".
func digraph[T any](alg algebra.Algebra[T], start, goal string, arcs ...arc[string, T]) *problem.Funcs[string, T, T] {
	return graphOf(alg, start, goal, goal != "", arcs...)
}

func graphOf[S comparable, T any](alg algebra.Algebra[T], start, goal S, hasGoal bool, arcs ...arc[S, T]) *problem.Funcs[S, T, T] {
	adj := make(map[S][]problem.Transition[S, T])
	for _, a := range arcs {
		adj[a.from] = append(adj[a.from], problem.Transition[S, T]{To: a.to, Action: a.w})
	}

	return &problem.Funcs[S, T, T]{
		Initial:     start,
		Goal:        goal,
		HasGoal:     hasGoal,
		Successors:  problem.FromSlice(func(from S) []problem.Transition[S, T] { return adj[from] }),
		CostFunc:    func(_, _ S, w T) T { return w },
		Accumulator: alg,
	}
}

// fourNode is the reference scenario:
//
//	A→B 1, A→C 4, B→C 1, B→D 5, C→D 1
func fourNode(goal string) *problem.Funcs[string, int, int] {
	return digraph(algebra.Additive[int](), "A", goal,
		arc[string, int]{"A", "B", 1},
		arc[string, int]{"A", "C", 4},
		arc[string, int]{"B", "C", 1},
		arc[string, int]{"B", "D", 5},
		arc[string, int]{"C", "D", 1},
	)
}

// counter is an unbounded chain 0 → 1 → 2 → ... without a goal.
func counter() *problem.Funcs[int, struct{}, int] {
	return &problem.Funcs[int, struct{}, int]{
		Successors: problem.FromSlice(func(from int) []problem.Transition[int, struct{}] {
			return []problem.Transition[int, struct{}]{{To: from + 1}}
		}),
		CostFunc:    func(_, _ int, _ struct{}) int { return 1 },
		Accumulator: algebra.Additive[int](),
	}
}

// randomArcs draws a reproducible random digraph over nodes 0..n-1 with
// weights in [1, 9].
func randomArcs(seed uint64, n, m int) []arc[int, int] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]arc[int, int], 0, m)
	for range m {
		out = append(out, arc[int, int]{rng.IntN(n), rng.IntN(n), 1 + rng.IntN(9)})
	}

	return out
}

// bellmanFord returns reference shortest distances from src; unreachable
// nodes are absent.
func bellmanFord(n, src int, arcs []arc[int, int]) map[int]int {
	dist := map[int]int{src: 0}
	for range n {
		changed := false
		for _, a := range arcs {
			d, ok := dist[a.from]
			if !ok {
				continue
			}
			if cur, seen := dist[a.to]; !seen || d+a.w < cur {
				dist[a.to] = d + a.w
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}
