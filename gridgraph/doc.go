// Package gridgraph treats a 2D grid of cells as a graph, enabling
// weighted path finding, component analysis and minimal-cost "island"
// expansions on top of the search engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - PathProblem walks land cells; entering a cell costs its value (×√2 on
//     diagonals). ShortestPath solves it with A* and the Manhattan or octile
//     heuristic matching the connectivity.
//   - ConnectedComponents identifies islands of cells with value ≥ LandThreshold.
//   - ExpandIsland computes minimal water conversions to connect two islands,
//     as a multi-source 0/1-cost search from a virtual root.
//   - ToCoreGraph converts to a *core.Graph for graph-level searches.
//
// Complexity:
//
//   - ShortestPath, ExpandIsland: O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ConnectedComponents:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToCoreGraph:                O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrOutOfBounds, ErrBlocked, ErrNegativeCost: invalid path endpoints or costs.
//   - ErrNoPath: the endpoints are not connected.
package gridgraph
