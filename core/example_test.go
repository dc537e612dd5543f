package core_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	ids, _ := g.NeighborIDs("A")
	fmt.Println("Neighbors of A:", ids)

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// Neighbors of A: [B C]
}

// ExampleNewRoute runs a breadth-first search over an unweighted graph.
func ExampleNewRoute() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}, {"C", "E"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}
	r, err := core.NewRoute(g, "A", "E")
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := search.BreadthFirst[string, *core.Edge, int64](context.Background(), r)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Path, res.Cost)

	// Output:
	// [A B C E] 3
}
