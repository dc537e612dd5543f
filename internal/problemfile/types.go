package problemfile

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvsearch/search"
)

// ErrInvalid wraps every validation failure of a problem file.
var ErrInvalid = errors.New("problemfile: invalid problem")

// Kind selects the problem domain of a file.
type Kind string

const (
	KindGraph Kind = "graph"
	KindGrid  Kind = "grid"
)

// Algorithm selects the search strategy.
type Algorithm string

const (
	Dijkstra     Algorithm = "dijkstra"
	AStar        Algorithm = "astar"
	BreadthFirst Algorithm = "bfs"
)

// Algorithms lists the accepted strategy names.
var Algorithms = []Algorithm{Dijkstra, AStar, BreadthFirst}

// File is the decoded form of a problem file.
type File struct {
	Name      string    `yaml:"name"`
	Kind      Kind      `yaml:"kind"`
	Algorithm Algorithm `yaml:"algorithm,omitempty"`
	Graph     *Graph    `yaml:"graph,omitempty"`
	Grid      *Grid     `yaml:"grid,omitempty"`
	Limits    Limits    `yaml:"limits,omitempty"`
}

// Graph describes a core.Graph route problem. Generated topology, if any,
// is built first and the listed edges are added on top.
type Graph struct {
	Directed bool      `yaml:"directed"`
	Start    string    `yaml:"start"`
	Goal     string    `yaml:"goal"`
	Generate *Generate `yaml:"generate,omitempty"`
	Edges    []Edge    `yaml:"edges"`
}

// Generate selects a builder topology. Vertex IDs are decimal, except for
// grids which use "r,c". A positive MaxWeight makes the graph weighted with
// weights drawn uniformly from [MinWeight, MaxWeight].
type Generate struct {
	Topology  string  `yaml:"topology"` // path, cycle, star, complete, grid, random
	N         int     `yaml:"n"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	P         float64 `yaml:"p"`
	Seed      uint64  `yaml:"seed"`
	MinWeight int64   `yaml:"min_weight"`
	MaxWeight int64   `yaml:"max_weight"`
}

// Edge is one graph edge. A zero weight on every edge makes the graph
// unweighted.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Grid describes a gridgraph.PathProblem.
type Grid struct {
	Connectivity int     `yaml:"connectivity"` // 4 (default) or 8
	Threshold    *int    `yaml:"threshold"`    // default 1
	Start        []int   `yaml:"start"`        // [x, y]
	Goal         []int   `yaml:"goal"`         // [x, y]
	Cells        [][]int `yaml:"cells"`
}

// Limits maps to the engine budgets.
type Limits struct {
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Summary is the type-erased outcome of solving a file.
type Summary struct {
	Name      string
	Algorithm Algorithm
	RunID     string
	Outcome   search.Outcome
	Path      []string // states from start to goal, empty unless found
	Cost      float64
	Stats     search.Stats
}

// TreeEntry is one finalized state of a shortest-path tree.
type TreeEntry struct {
	State  string
	Parent string // empty for the start state
	Cost   float64
}
