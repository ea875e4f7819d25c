// SPDX-License-Identifier: MIT
package arbitrary

import (
	"math/rand"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
)

// GraphConfig bounds the Erdős–Rényi-like graphs a Graph arbitrary draws:
// vertex count in [MinVertices, MaxVertices], edge probability in
// [MinProb, MaxProb]. Weighted/Directed mirror core.GraphOption flags.
type GraphConfig struct {
	MinVertices, MaxVertices int
	MinProb, MaxProb         float64
	Directed                 bool
	Weighted                 bool
}

// graphArb draws *core.Graph values by sampling (n, p) uniformly from cfg
// and delegating topology construction to builder.RandomSparse — the
// same Erdős–Rényi constructor the teacher repo ships (§3:
// "String/Regex/Graph/Path … derived via map from integer arbitraries":
// n and p are each drawn via the same uniform-draw primitive as Integer
// and Real).
type graphArb struct {
	cfg GraphConfig
}

// Graph returns an Arbitrary over *core.Graph values, built via
// builder.RandomSparse(n, p) for n in [cfg.MinVertices, cfg.MaxVertices]
// and p in [cfg.MinProb, cfg.MaxProb].
func Graph(cfg GraphConfig) Arbitrary {
	if cfg.MinVertices < 0 || cfg.MinVertices > cfg.MaxVertices {
		return NoArbitrary()
	}
	if cfg.MinProb < 0 || cfg.MaxProb > 1 || cfg.MinProb > cfg.MaxProb {
		return NoArbitrary()
	}

	return graphArb{cfg: cfg}
}

func (a graphArb) Name() string { return "graph" }

// Size is estimated: the number of distinct (n,p)-parameterized Erdős–
// Rényi graphs is astronomically large and not usefully exact.
func (a graphArb) Size() Size {
	span := float64(a.cfg.MaxVertices-a.cfg.MinVertices) + 1

	return EstimatedSize(span*nominalRealCardinality, span, span*nominalRealCardinality)
}

func (a graphArb) Pick(rng RNG) (Pick, bool) {
	n := intFromUnit(rng.Float64(), a.cfg.MinVertices, a.cfg.MaxVertices)
	p := a.cfg.MinProb + rng.Float64()*(a.cfg.MaxProb-a.cfg.MinProb)

	gopts := []core.GraphOption{core.WithDirected(a.cfg.Directed)}
	if a.cfg.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}

	// builder requires a *rand.Rand; derive one deterministically from
	// this draw so the same arbitrary RNG stream always reproduces the
	// same graph (§5 reproducibility).
	seed := int64(rng.Float64() * (1 << 62))
	bopts := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(seed)))}

	g, err := builder.BuildGraph(gopts, bopts, builder.RandomSparse(n, p))
	if err != nil || g == nil {
		return Pick{}, false
	}

	return NewPick(g), true
}

func (a graphArb) CanGenerate(p Pick) bool {
	g, ok := p.Value.(*core.Graph)
	if !ok || g == nil {
		return false
	}

	return g.VertexCount() >= a.cfg.MinVertices && g.VertexCount() <= a.cfg.MaxVertices
}

// CornerCases returns the smallest admissible graph (MinVertices, p=0)
// and the densest admissible graph (MinVertices small sample, p=MaxProb).
func (a graphArb) CornerCases() []Pick {
	small := graphArb{cfg: GraphConfig{
		MinVertices: a.cfg.MinVertices, MaxVertices: a.cfg.MinVertices,
		MinProb: 0, MaxProb: 0, Directed: a.cfg.Directed, Weighted: a.cfg.Weighted,
	}}
	dense := graphArb{cfg: GraphConfig{
		MinVertices: a.cfg.MinVertices, MaxVertices: a.cfg.MinVertices,
		MinProb: a.cfg.MaxProb, MaxProb: a.cfg.MaxProb, Directed: a.cfg.Directed, Weighted: a.cfg.Weighted,
	}}

	var out []Pick
	if p, ok := small.Pick(deterministicRNG{}); ok {
		out = append(out, p)
	}
	if p, ok := dense.Pick(deterministicRNG{}); ok {
		out = append(out, p)
	}

	return out
}

// Shrink halves the vertex-count ceiling, the structural analogue of
// Array's length-halving shrink.
func (a graphArb) Shrink(initial Pick) Arbitrary {
	g, ok := initial.Value.(*core.Graph)
	if !ok {
		return a
	}

	newMax := g.VertexCount() / 2
	if newMax < a.cfg.MinVertices {
		newMax = a.cfg.MinVertices
	}
	cfg := a.cfg
	cfg.MaxVertices = newMax

	return Graph(cfg)
}

// HashCode/Equal use the (vertex count, edge count) signature as a
// deliberately coarse bucketing key; exact structural equality of graphs
// is not meaningful for label aggregation purposes here.
func (a graphArb) HashCode(v Value) uint64 {
	g, ok := v.(*core.Graph)
	if !ok || g == nil {
		return 0
	}

	return uint64(g.VertexCount())<<32 | uint64(g.EdgeCount())
}

func (a graphArb) Equal(x, y Value) bool {
	gx, okx := x.(*core.Graph)
	gy, oky := y.(*core.Graph)
	if !okx || !oky || gx == nil || gy == nil {
		return false
	}

	return gx.VertexCount() == gy.VertexCount() && gx.EdgeCount() == gy.EdgeCount()
}

// deterministicRNG always returns 0, used to derive the "smallest"/"first"
// member of a random construction deterministically for CornerCases.
type deterministicRNG struct{}

func (deterministicRNG) Float64() float64 { return 0 }
