package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/core"
)

func TestGraph_PickRespectsVertexBounds(t *testing.T) {
	cfg := arbitrary.GraphConfig{MinVertices: 3, MaxVertices: 8, MinProb: 0.2, MaxProb: 0.6}
	g := arbitrary.Graph(cfg)

	rng := arbitrary.NewRandRNG(15)
	for i := 0; i < 10; i++ {
		p, ok := g.Pick(rng)
		require.True(t, ok)
		graph := p.Value.(*core.Graph)
		assert.GreaterOrEqual(t, graph.VertexCount(), 3)
		assert.LessOrEqual(t, graph.VertexCount(), 8)
		assert.True(t, g.CanGenerate(p))
	}
}

func TestGraph_InvalidConfigIsNoArbitrary(t *testing.T) {
	assert.True(t, arbitrary.IsNoArbitrary(arbitrary.Graph(arbitrary.GraphConfig{MinVertices: 5, MaxVertices: 2})))
	assert.True(t, arbitrary.IsNoArbitrary(arbitrary.Graph(arbitrary.GraphConfig{MinProb: 0.9, MaxProb: 0.1})))
}

func TestGraph_CornerCasesReturnSmallAndDenseGraphs(t *testing.T) {
	cfg := arbitrary.GraphConfig{MinVertices: 4, MaxVertices: 4, MinProb: 0, MaxProb: 1}
	g := arbitrary.Graph(cfg)
	cc := g.CornerCases()
	assert.Len(t, cc, 2)
	for _, p := range cc {
		graph := p.Value.(*core.Graph)
		assert.Equal(t, 4, graph.VertexCount())
	}
}

func TestGraph_ShrinkHalvesVertexCeiling(t *testing.T) {
	cfg := arbitrary.GraphConfig{MinVertices: 1, MaxVertices: 20, MinProb: 0.1, MaxProb: 0.1}
	g := arbitrary.Graph(cfg)
	rng := arbitrary.NewRandRNG(2)
	p, ok := g.Pick(rng)
	require.True(t, ok)

	shrunk := g.Shrink(p)
	p2, ok := shrunk.Pick(rng)
	require.True(t, ok)
	graph := p2.Value.(*core.Graph)
	assert.LessOrEqual(t, graph.VertexCount(), 10)
}
