package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

type fixedRNG struct{ v float64 }

func (f fixedRNG) Float64() float64 { return f.v }

func TestInteger_InvalidRangeIsNoArbitrary(t *testing.T) {
	a := arbitrary.Integer(5, 3)
	assert.Equal(t, 0.0, a.Size().Value)
	_, ok := a.Pick(fixedRNG{0.5})
	assert.False(t, ok)
}

func TestInteger_ExactSize(t *testing.T) {
	a := arbitrary.Integer(1, 10)
	sz := a.Size()
	assert.True(t, sz.Exact)
	assert.Equal(t, 10.0, sz.Value)
}

func TestInteger_PickWithinRange(t *testing.T) {
	a := arbitrary.Integer(-100, 100)
	rng := arbitrary.NewRandRNG(42)
	for i := 0; i < 500; i++ {
		p, ok := a.Pick(rng)
		require.True(t, ok)
		v := p.Value.(int64)
		assert.GreaterOrEqual(t, v, int64(-100))
		assert.LessOrEqual(t, v, int64(100))
		assert.True(t, a.CanGenerate(p))
	}
}

func TestInteger_CornerCasesIncludeBounds(t *testing.T) {
	a := arbitrary.Integer(-10, 10)
	cc := a.CornerCases()
	var hasMin, hasMax, hasZero bool
	for _, p := range cc {
		switch p.Value.(int64) {
		case -10:
			hasMin = true
		case 10:
			hasMax = true
		case 0:
			hasZero = true
		}
	}
	assert.True(t, hasMin)
	assert.True(t, hasMax)
	assert.True(t, hasZero)
}

func TestInteger_ShrinkTowardZero(t *testing.T) {
	a := arbitrary.Integer(-100, 100)
	shrunk := a.Shrink(arbitrary.NewPick(int64(80)))
	p, ok := shrunk.Pick(fixedRNG{0.999})
	require.True(t, ok)
	v := p.Value.(int64)
	assert.Less(t, v, int64(80))
	assert.True(t, a.CanGenerate(p), "shrunk picks must satisfy the parent's CanGenerate")
}

func TestInteger_ShrinkOfZeroIsConstant(t *testing.T) {
	a := arbitrary.Integer(-100, 100)
	shrunk := a.Shrink(arbitrary.NewPick(int64(0)))
	p, ok := shrunk.Pick(fixedRNG{0.5})
	require.True(t, ok)
	assert.Equal(t, int64(0), p.Value)
}
