package gridgraph

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// PathProblem is the search problem of walking over land cells from one
// point to another. Entering a cell costs its value, multiplied by √2 for
// diagonal steps; cells below LandThreshold are walls.
//
// PathProblem implements problem.Problem[Point, Move, float64].
type PathProblem struct {
	gg       *GridGraph
	from, to Point
	hasGoal  bool
}

var _ problem.Problem[Point, Move, float64] = (*PathProblem)(nil)

// NewPathProblem returns the walk from 'from' to 'to'. With hasGoal false
// the problem has no goal state, for shortest-path-tree searches.
//
// Returns ErrOutOfBounds, ErrBlocked for endpoints on water, or
// ErrNegativeCost when any land cell is negative.
func (gg *GridGraph) NewPathProblem(from, to Point, hasGoal bool) (*PathProblem, error) {
	ends := []Point{from, to}
	if !hasGoal {
		ends = ends[:1]
	}
	for _, p := range ends {
		if !gg.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
		}
		if !gg.IsLand(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlocked, p.X, p.Y)
		}
	}
	if gg.minLand < 0 {
		return nil, ErrNegativeCost
	}

	return &PathProblem{gg: gg, from: from, to: to, hasGoal: hasGoal}, nil
}

// InitialState implements problem.Problem.
func (p *PathProblem) InitialState() Point { return p.from }

// GoalState implements problem.Problem.
func (p *PathProblem) GoalState() (Point, bool) { return p.to, p.hasGoal }

// Transitions enumerates the land neighbors of from in offset order.
func (p *PathProblem) Transitions(from Point) iter.Seq[problem.Transition[Point, Move]] {
	return func(yield func(problem.Transition[Point, Move]) bool) {
		for _, d := range p.gg.neighborOffsets {
			nx, ny := from.X+d.DX, from.Y+d.DY
			if !p.gg.IsLand(nx, ny) {
				continue
			}
			if !yield(problem.Transition[Point, Move]{To: Point{nx, ny}, Action: d}) {
				return
			}
		}
	}
}

// Cost is the destination value, scaled by √2 for diagonal moves.
func (p *PathProblem) Cost(_, to Point, m Move) float64 {
	c := float64(p.gg.CellValues[to.Y][to.X])
	if m.Diagonal() {
		c *= math.Sqrt2
	}

	return c
}

// Algebra implements problem.Problem.
func (p *PathProblem) Algebra() algebra.Algebra[float64] { return algebra.Additive[float64]() }

// Heuristic returns the admissible estimate matching the grid's
// connectivity: Manhattan for Conn4, octile for Conn8, both scaled by the
// cheapest land value.
func (p *PathProblem) Heuristic() problem.Heuristic[Point, float64] {
	scale := float64(p.gg.minLand)
	if p.gg.Conn == Conn8 {
		return func(s Point) float64 { return scale * Octile(s, p.to) }
	}

	return func(s Point) float64 { return scale * Manhattan(s, p.to) }
}

// Manhattan is the 4-connected grid distance between a and b.
func Manhattan(a, b Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Octile is the 8-connected grid distance between a and b with diagonal
// steps of length √2.
func Octile(a, b Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	return float64(max(dx, dy)) + (math.Sqrt2-1)*float64(min(dx, dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// ShortestPath runs A* from 'from' to 'to' and returns the visited points
// and the accumulated cost. ErrNoPath is returned when the goal is
// unreachable; an interrupted search returns an error naming its outcome.
func (gg *GridGraph) ShortestPath(ctx context.Context, from, to Point, opts ...search.Option) ([]Point, float64, error) {
	p, err := gg.NewPathProblem(from, to, true)
	if err != nil {
		return nil, 0, err
	}
	res, err := search.AStar[Point, Move, float64](ctx, p, p.Heuristic(), opts...)
	if err != nil {
		return nil, 0, err
	}
	switch res.Outcome {
	case search.Found:
		return res.Path, res.Cost, nil
	case search.NoPath:
		return nil, 0, ErrNoPath
	default:
		return nil, 0, fmt.Errorf("gridgraph: search %s", res.Outcome)
	}
}
