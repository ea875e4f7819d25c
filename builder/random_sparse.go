// Package builder — RandomSparse samples an Erdős–Rényi-like graph: each
// admissible pair of vertices gets an edge independently with probability p.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0

	// randomWeightMax bounds the arbitrary uniform weight assigned to edges
	// of a weighted graph; the exact distribution isn't load-bearing for
	// the generators that consume it.
	randomWeightMax = 100
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. A Constructor must not panic; it returns sentinel errors.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves a builderConfig from
// bopts, and applies cons in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
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

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p. Vertices are added
// "0".."n-1" in order; edge trials run i asc, j asc (undirected: j>i) for
// determinism given a fixed rng stream.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodRandomSparse, i, err)
			}
		}

		weighted := g.Weighted()
		directed := g.Directed()
		rng := cfg.rng

		addEdge := func(u, v string) error {
			var w int64
			if weighted {
				if rng != nil {
					w = 1 + rng.Int63n(randomWeightMax)
				} else {
					w = 1
				}
			}
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodRandomSparse, u, v, w, err)
			}

			return nil
		}

		include := func() bool {
			if rng == nil {
				return p == 1.0
			}

			return rng.Float64() <= p
		}

		for i := 0; i < n; i++ {
			u := strconv.Itoa(i)
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if directed && i == j {
					continue
				}
				if !include() {
					continue
				}
				if err := addEdge(u, strconv.Itoa(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
