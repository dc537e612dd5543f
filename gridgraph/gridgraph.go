package gridgraph

import (
	"strconv"

	"github.com/katalvlaran/lvsearch/core"
)

var (
	offsets4 = []Move{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Move{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    make([][]int, h),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
	}
	first := true
	for y := range h {
		gg.CellValues[y] = append([]int(nil), values[y]...)
		for _, v := range values[y] {
			if v >= opts.LandThreshold && (first || v < gg.minLand) {
				gg.minLand, first = v, false
			}
		}
	}
	gg.neighborOffsets = offsets4
	if opts.Conn == Conn8 {
		gg.neighborOffsets = offsets8
	}

	return gg, nil
}

// From2D builds a GridGraph with the default LandThreshold and the given
// connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the neighbor offsets for the grid's connectivity,
// in clockwise order starting north. The slice must not be modified.
func (gg *GridGraph) NeighborOffsets() []Move {
	return gg.neighborOffsets
}

// vertexID formats the core.Graph vertex identifier for cell (x,y).
func vertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ToCoreGraph converts the GridGraph into a weighted, undirected *core.Graph.
// Each cell at (x,y) becomes a vertex with ID "x,y"; unit-weight edges
// connect neighboring cells according to gg.Conn.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for y := range gg.Height {
		for x := range gg.Width {
			_ = g.AddVertex(vertexID(x, y))
		}
	}
	for y := range gg.Height {
		for x := range gg.Width {
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d.DX, y+d.DY
				if !gg.InBounds(nx, ny) {
					continue
				}
				// the mirrored pair is rejected as a multi-edge
				_, _ = g.AddEdge(vertexID(x, y), vertexID(nx, ny), 1)
			}
		}
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
