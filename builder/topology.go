package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Path builds P_n: 0–1–…–(n-1), n ≥ 2. On directed graphs edges point
// forward only.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addVertices(g, "Path", n); err != nil {
			return err
		}
		for i := range n - 1 {
			if err := cfg.link(g, "Path", cfg.idFn(i), cfg.idFn(i+1), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n, n ≥ 3: Path(n) plus the closing edge (n-1)→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return cfg.link(g, "Cycle", cfg.idFn(n-1), cfg.idFn(0), false)
	}
}

// Star builds a star with center "Center" and n-1 leaves, n ≥ 2. Spokes
// point outward on directed graphs.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		const center = "Center"
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("Star: AddVertex(%s): %w", center, err)
		}
		if err := cfg.addVertices(g, "Star", n-1); err != nil {
			return err
		}
		for i := range n - 1 {
			if err := cfg.link(g, "Star", center, cfg.idFn(i), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, n ≥ 1. Directed graphs get both directions of
// every pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addVertices(g, "Complete", n); err != nil {
			return err
		}
		for i := range n {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, "Complete", cfg.idFn(i), cfg.idFn(j), true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid with IDs "r,c", each ≥ 1.
// Edges go right then down per cell in row-major order; directed graphs
// get both directions.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := range rows {
			for c := range cols {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("Grid: AddVertex(%s): %w", id(r, c), err)
				}
			}
		}
		for r := range rows {
			for c := range cols {
				if c+1 < cols {
					if err := cfg.link(g, "Grid", id(r, c), id(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(g, "Grid", id(r, c), id(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph, n ≥ 1, p ∈ [0,1].
// Pairs are tried in (i asc, j asc) order; directed graphs try every
// ordered pair, undirected ones only i < j. p strictly between 0 and 1
// needs a random source.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := cfg.addVertices(g, "RandomSparse", n); err != nil {
			return err
		}

		for i := range n {
			j0 := i + 1
			if g.Directed() {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := cfg.link(g, "RandomSparse", cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
