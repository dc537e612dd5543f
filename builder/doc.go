// Package builder generates deterministic core.Graph topologies: paths,
// cycles, stars, complete graphs, grids and seeded random graphs. They
// back generated problem files, examples and benchmarks.
//
// BuildGraph is the single entry point:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeights(1, 9))},
//	    builder.Grid(10, 10),
//	)
//
// Vertex IDs are decimal ("0", "1", ...) unless WithIDScheme says
// otherwise; Grid always uses "r,c". Edges are emitted in a documented,
// stable order, so equal inputs and seeds give identical graphs.
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter is below the topology minimum.
//   - ErrInvalidProbability: RandomSparse p outside [0,1].
//   - ErrNeedRandSource: a stochastic constructor ran without WithSeed/WithRand.
//   - ErrConstructFailed: a nil constructor was passed.
package builder
