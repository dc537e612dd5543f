package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrInterrupted indicates that the search was cancelled or ran out of
	// budget before every reachable vertex was settled.
	ErrInterrupted = errors.New("dijkstra: search interrupted")
)

// MemoryMode is accepted for compatibility and has no effect: the search
// tree records the predecessor of every settled vertex in both modes, and
// the prev map is built only when ReturnPath is set.
type MemoryMode int

const (
	// MemoryModeFull is the default mode.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact behaves exactly like MemoryModeFull.
	MemoryModeCompact
)

// Options configures the behavior of Dijkstra.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – optional vertex ID; the run stops once it is settled.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – vertices farther than this are left unsettled. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0.
// Context          – cancels the run; an interrupted run returns ErrInterrupted.
// Search           – options forwarded to the underlying search engine
//
//	(logging, tracing, metrics, expansion budget).
type Options struct {
	Source           string
	Target           string
	MemoryMode       MemoryMode
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Context          context.Context
	Search           []search.Option
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMemoryMode sets Options.MemoryMode; see MemoryMode.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// Source sets the starting vertex ID. It is required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target stops the run as soon as the given vertex is settled. Vertices
// not settled by then report math.MaxInt64.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithContext sets the context that cancels the run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithSearchOptions forwards options to the search engine.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// DefaultOptions returns Options initialized with defaults for the given
// source vertex ID.
//
// Defaults:
//   - MemoryMode:       MemoryModeFull.
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no impassable edges).
//   - Context:          context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MemoryMode:       MemoryModeFull,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Context:          context.Background(),
	}
}
