package problemfile

import (
	"github.com/katalvlaran/lvsearch/builder"
)

var topologies = []string{"path", "cycle", "star", "complete", "grid", "random"}

// constructor maps the topology name to its builder.
func (gen *Generate) constructor() builder.Constructor {
	switch gen.Topology {
	case "path":
		return builder.Path(gen.N)
	case "cycle":
		return builder.Cycle(gen.N)
	case "star":
		return builder.Star(gen.N)
	case "complete":
		return builder.Complete(gen.N)
	case "grid":
		return builder.Grid(gen.Rows, gen.Cols)
	default:
		return builder.RandomSparse(gen.N, gen.P)
	}
}

func (gen *Generate) options() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(gen.Seed),
		builder.WithWeightFn(builder.UniformWeights(gen.MinWeight, gen.MaxWeight)),
	}
}
