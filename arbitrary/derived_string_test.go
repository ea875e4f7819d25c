package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

func TestString_PickRespectsLengthAndCharset(t *testing.T) {
	s := arbitrary.String(2, 6, "ab")
	rng := arbitrary.NewRandRNG(8)
	for i := 0; i < 50; i++ {
		p, ok := s.Pick(rng)
		require.True(t, ok)
		str := p.Value.(string)
		assert.GreaterOrEqual(t, len(str), 2)
		assert.LessOrEqual(t, len(str), 6)
		for _, r := range str {
			assert.Contains(t, "ab", string(r))
		}
		assert.True(t, s.CanGenerate(p))
	}
}

func TestString_DefaultAlphabetUsedWhenCharsetEmpty(t *testing.T) {
	s := arbitrary.String(1, 1, "")
	rng := arbitrary.NewRandRNG(1)
	p, ok := s.Pick(rng)
	require.True(t, ok)
	assert.Len(t, p.Value.(string), 1)
}

func TestString_InvalidRangeIsNoArbitrary(t *testing.T) {
	s := arbitrary.String(5, 2, "ab")
	assert.True(t, arbitrary.IsNoArbitrary(s))
}

func TestRegex_PickMatchesPattern(t *testing.T) {
	r := arbitrary.Regex("a[0-9]{2,4}b")
	rng := arbitrary.NewRandRNG(3)
	for i := 0; i < 20; i++ {
		p, ok := r.Pick(rng)
		require.True(t, ok)
		assert.True(t, r.CanGenerate(p))
	}
}

func TestRegex_InvalidPatternIsNoArbitrary(t *testing.T) {
	r := arbitrary.Regex("a(b")
	assert.True(t, arbitrary.IsNoArbitrary(r))
}

func TestRegex_CornerCaseIsMinimalExpansion(t *testing.T) {
	r := arbitrary.Regex("ab*c")
	cc := r.CornerCases()
	require.Len(t, cc, 1)
	assert.Equal(t, "ac", cc[0].Value)
}

func TestRegex_ShrinkYieldsMinimalMatchingConstant(t *testing.T) {
	r := arbitrary.Regex("x[a-c]{1,3}y")
	shrunk := r.Shrink(arbitrary.NewPick("xabcy"))
	rng := arbitrary.NewRandRNG(0)
	p, ok := shrunk.Pick(rng)
	require.True(t, ok)
	assert.True(t, r.CanGenerate(p))
}
