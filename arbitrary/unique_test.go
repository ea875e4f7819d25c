package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

func TestUnique_WithoutSketchMatchesBaseSize(t *testing.T) {
	base := arbitrary.Integer(1, 100)
	u := arbitrary.Unique(base)
	assert.Equal(t, base.Size().Value, u.Size().Value)
}

func TestUnique_WithSketchEstimatesCardinalityAfterDraws(t *testing.T) {
	base := arbitrary.Integer(1, 1000)
	u := arbitrary.WithSketch(arbitrary.Unique(base))

	rng := arbitrary.NewRandRNG(21)
	for i := 0; i < 200; i++ {
		_, ok := u.Pick(rng)
		require.True(t, ok)
	}

	sz := u.Size()
	assert.False(t, sz.Exact)
	assert.Greater(t, sz.Value, 0.0)
}

func TestUnique_DelegatesCanGenerateToBase(t *testing.T) {
	base := arbitrary.Integer(1, 10)
	u := arbitrary.Unique(base)
	assert.True(t, u.CanGenerate(arbitrary.NewPick(int64(5))))
	assert.False(t, u.CanGenerate(arbitrary.NewPick(int64(50))))
}
