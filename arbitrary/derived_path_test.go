package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/core"
)

func lineGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(false))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(itoa(i)))
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(itoa(i), itoa(i+1), 0)
		require.NoError(t, err)
	}

	return g
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}

	return string(digits[i/10]) + string(digits[i%10])
}

func TestPath_PickStaysWithinMaxLen(t *testing.T) {
	g := lineGraph(t, 6)
	p := arbitrary.Path(g, "0", nil, 2)

	rng := arbitrary.NewRandRNG(5)
	for i := 0; i < 20; i++ {
		pick, ok := p.Pick(rng)
		if !ok {
			continue
		}
		path := pick.Value.([]string)
		assert.LessOrEqual(t, len(path)-1, 2)
		assert.Equal(t, "0", path[0])
		assert.True(t, p.CanGenerate(pick))
	}
}

func TestPath_FixedDestinationReconstructsExactPath(t *testing.T) {
	g := lineGraph(t, 4)
	dst := "3"
	p := arbitrary.Path(g, "0", &dst, 10)

	rng := arbitrary.NewRandRNG(1)
	pick, ok := p.Pick(rng)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "2", "3"}, pick.Value)
}

func TestPath_UnknownSourceIsNoArbitrary(t *testing.T) {
	g := lineGraph(t, 3)
	p := arbitrary.Path(g, "missing", nil, 5)
	assert.True(t, arbitrary.IsNoArbitrary(p))
}

func TestPath_CornerCaseIsSingleVertexPath(t *testing.T) {
	g := lineGraph(t, 3)
	p := arbitrary.Path(g, "0", nil, 5)
	cc := p.CornerCases()
	require.Len(t, cc, 1)
	assert.Equal(t, []string{"0"}, cc[0].Value)
}
