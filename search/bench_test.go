package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/search"
)

func BenchmarkDijkstra_Random1k(b *testing.B) {
	const n = 1000
	arcs := randomArcs(7, n, 8*n)
	p := graphOf(algebra.Additive[int](), 0, 0, false, arcs...)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := search.ShortestPathTree[int, int, int](ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStepper_Chain(b *testing.B) {
	ctx := context.Background()
	s := search.New[int, struct{}, int](counter(), search.WithMaxExpansions(10_000))

	b.ReportAllocs()
	for b.Loop() {
		st, err := s.Stepper(ctx)
		if err != nil {
			b.Fatal(err)
		}
		for range st.All() {
		}
	}
}
