package gridgraph

import (
	"context"
	"iter"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// virtualRoot is the synthetic start state of multi-source searches; its
// transitions lead to every source cell at zero cost.
const virtualRoot = -1

// cellProblem walks row-major cell indices. With landOnly set, water is a
// wall and each step costs 1; otherwise entering land costs 0 and entering
// water costs 1 (one conversion).
type cellProblem struct {
	gg       *GridGraph
	start    int
	roots    []int
	landOnly bool
}

func (p *cellProblem) InitialState() int { return p.start }

func (p *cellProblem) GoalState() (int, bool) { return 0, false }

func (p *cellProblem) Transitions(from int) iter.Seq[problem.Transition[int, Move]] {
	return func(yield func(problem.Transition[int, Move]) bool) {
		if from == virtualRoot {
			for _, r := range p.roots {
				if !yield(problem.Transition[int, Move]{To: r}) {
					return
				}
			}
			return
		}
		x, y := p.gg.Coordinate(from)
		for _, d := range p.gg.neighborOffsets {
			nx, ny := x+d.DX, y+d.DY
			if !p.gg.InBounds(nx, ny) || (p.landOnly && !p.gg.IsLand(nx, ny)) {
				continue
			}
			if !yield(problem.Transition[int, Move]{To: p.gg.index(nx, ny), Action: d}) {
				return
			}
		}
	}
}

func (p *cellProblem) Cost(from, to int, _ Move) int {
	switch {
	case from == virtualRoot:
		return 0
	case p.landOnly:
		return 1
	}
	x, y := p.gg.Coordinate(to)
	if p.gg.IsLand(x, y) {
		return 0
	}

	return 1
}

func (p *cellProblem) Algebra() algebra.Algebra[int] { return algebra.Additive[int]() }

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; each is a
// slice of row-major cell indices in breadth-first order from that cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d·log(W·H)), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := range gg.Height {
		for x := range gg.Width {
			i0 := gg.index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			p := &cellProblem{gg: gg, start: i0, landOnly: true}
			res, err := search.ShortestPathTree[int, Move, int](context.Background(), p,
				search.WithLabel("grid-components"))
			if err != nil {
				// the problem and options are always valid
				panic(err)
			}
			comp := res.Tree().Order()
			for _, i := range comp {
				seen[i] = true
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
