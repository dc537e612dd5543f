package gridgraph_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

func randomGrid(w, h int, seed uint64) [][]int {
	rng := rand.New(rand.NewPCG(seed, seed))
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = 1 + rng.IntN(4)
		}
	}

	return grid
}

func BenchmarkShortestPath(b *testing.B) {
	gg, _ := gridgraph.From2D(randomGrid(128, 128, 1), gridgraph.Conn8)
	ctx := context.Background()
	goal := gridgraph.Point{X: 127, Y: 127}
	for b.Loop() {
		_, _, _ = gg.ShortestPath(ctx, gridgraph.Point{}, goal)
	}
}

func BenchmarkConnectedComponents(b *testing.B) {
	grid := randomGrid(64, 64, 2)
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] -= 2 // roughly half water
		}
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	for b.Loop() {
		_ = gg.ConnectedComponents()
	}
}
