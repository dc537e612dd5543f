package gridgraph

import (
	"context"

	"github.com/katalvlaran/lvsearch/search"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified
// by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the sequence of cell indices (row-major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source search from a virtual root linked to all srcComp cells:
//     • Moving into a land cell  → cost 0
//     • Moving into a water cell → cost 1
//  3. Stop when any dstComp cell is settled.
//
// Complexity: O(W·H·d·log(W·H)). Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dst := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dst[i] = struct{}{}
	}

	s := search.New[int, Move, int](&cellProblem{gg: gg, start: virtualRoot, roots: comps[srcComp]},
		search.WithLabel("grid-expand"))
	s.Goal = func(i int) bool {
		_, ok := dst[i]
		return ok
	}
	res, err := s.Run(context.Background())
	if err != nil {
		return nil, 0, err
	}
	if !res.Found() {
		return nil, 0, ErrNoPath
	}

	return res.Path[1:], res.Cost, nil
}
