package problemfile

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the problem file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes YAML into a File and validates it. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse problem yaml: %w", err)
	}
	if f.Algorithm == "" {
		f.Algorithm = Dijkstra
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks that exactly the section named by Kind is present and
// well formed.
func (f *File) Validate() error {
	if !slices.Contains(Algorithms, f.Algorithm) {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, f.Algorithm)
	}
	if f.Limits.MaxExpansions < 0 || f.Limits.Timeout < 0 {
		return fmt.Errorf("%w: negative limits", ErrInvalid)
	}

	switch f.Kind {
	case KindGraph:
		if f.Graph == nil || f.Grid != nil {
			return fmt.Errorf("%w: kind graph needs a graph section only", ErrInvalid)
		}
		return f.Graph.validate()
	case KindGrid:
		if f.Grid == nil || f.Graph != nil {
			return fmt.Errorf("%w: kind grid needs a grid section only", ErrInvalid)
		}
		return f.Grid.validate()
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, f.Kind)
	}
}

func (g *Graph) validate() error {
	if g.Start == "" {
		return fmt.Errorf("%w: graph start is required", ErrInvalid)
	}
	if gen := g.Generate; gen != nil {
		if !slices.Contains(topologies, gen.Topology) {
			return fmt.Errorf("%w: unknown topology %q", ErrInvalid, gen.Topology)
		}
		if gen.MinWeight < 0 || gen.MaxWeight < gen.MinWeight {
			return fmt.Errorf("%w: weight range [%d, %d]", ErrInvalid, gen.MinWeight, gen.MaxWeight)
		}
	}
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d has an empty endpoint", ErrInvalid, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d (%s→%s) has negative weight %d", ErrInvalid, i, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// weighted reports whether any edge carries a weight.
func (g *Graph) weighted() bool {
	if g.Generate != nil && g.Generate.MaxWeight > 0 {
		return true
	}

	return slices.ContainsFunc(g.Edges, func(e Edge) bool { return e.Weight != 0 })
}

func (g *Grid) validate() error {
	if g.Connectivity != 0 && g.Connectivity != 4 && g.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalid, g.Connectivity)
	}
	if len(g.Start) != 2 {
		return fmt.Errorf("%w: grid start must be [x, y]", ErrInvalid)
	}
	if g.Goal != nil && len(g.Goal) != 2 {
		return fmt.Errorf("%w: grid goal must be [x, y]", ErrInvalid)
	}
	if len(g.Cells) == 0 {
		return fmt.Errorf("%w: grid has no cells", ErrInvalid)
	}

	return nil
}
