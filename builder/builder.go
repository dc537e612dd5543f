package builder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for graph construction.
var (
	ErrTooFewVertices     = errors.New("builder: parameter too small")
	ErrInvalidProbability = errors.New("builder: probability out of range")
	ErrNeedRandSource     = errors.New("builder: rng is required")
	ErrConstructFailed    = errors.New("builder: construction failed")
)

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuilderOption configures ID generation, randomness and weights.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
}

const defaultWeight = int64(1)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme replaces the decimal vertex IDs. It panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand sets the random source. It panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a PCG random source.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithWeightFn sets the edge weight generator used on weighted graphs.
// It panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// UniformWeights draws weights uniformly from [lo, hi]. Without a random
// source every weight is lo.
func UniformWeights(lo, hi int64) func(*rand.Rand) int64 {
	return func(r *rand.Rand) int64 {
		if r == nil || hi <= lo {
			return lo
		}
		return lo + r.Int64N(hi-lo+1)
	}
}

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// cons in order. The first constructor error is returned wrapped.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// weight returns the next edge weight, or 0 on unweighted graphs.
func (c builderConfig) weight(g *core.Graph) int64 {
	if !g.Weighted() {
		return 0
	}

	return c.weightFn(c.rng)
}

// link adds u→v; on directed graphs symmetric topologies also add v→u
// with the same weight.
func (c builderConfig) link(g *core.Graph, method, u, v string, symmetric bool) error {
	w := c.weight(g)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if symmetric && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

func (c builderConfig) addVertices(g *core.Graph, method string, n int) error {
	for i := range n {
		if err := g.AddVertex(c.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, c.idFn(i), err)
		}
	}

	return nil
}
