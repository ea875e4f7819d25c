package arbitrary_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

func intToString(v arbitrary.Value) arbitrary.Value {
	return strconv.FormatInt(v.(int64), 10)
}

func stringToInt(v arbitrary.Value) (arbitrary.Value, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}

	return n, true
}

func TestMapped_WithInverseIsSizeExact(t *testing.T) {
	base := arbitrary.Integer(1, 50)
	m := arbitrary.Mapped(base, intToString, stringToInt)
	assert.Equal(t, base.Size().Value, m.Size().Value)
	assert.True(t, m.Size().Exact)
}

func TestMapped_WithoutInverseIsEstimated(t *testing.T) {
	base := arbitrary.Integer(1, 50)
	m := arbitrary.Mapped(base, intToString, nil)
	sz := m.Size()
	assert.False(t, sz.Exact)
}

func TestMapped_PickAppliesFn(t *testing.T) {
	base := arbitrary.Integer(1, 50)
	m := arbitrary.Mapped(base, intToString, stringToInt)
	rng := arbitrary.NewRandRNG(3)
	p, ok := m.Pick(rng)
	require.True(t, ok)
	_, isString := p.Value.(string)
	assert.True(t, isString)
	assert.True(t, m.CanGenerate(p))
}

func TestMapped_CanGenerateUsesInverse(t *testing.T) {
	base := arbitrary.Integer(1, 50)
	m := arbitrary.Mapped(base, intToString, stringToInt)
	assert.True(t, m.CanGenerate(arbitrary.NewPick("10")))
	assert.False(t, m.CanGenerate(arbitrary.NewPick("999")))
	assert.False(t, m.CanGenerate(arbitrary.NewPick("not-a-number")))
}

func TestMapped_ShrinkNarrowsBase(t *testing.T) {
	base := arbitrary.Integer(-100, 100)
	m := arbitrary.Mapped(base, intToString, stringToInt)
	initial := arbitrary.WithOriginal("80", int64(80))
	shrunk := m.Shrink(initial)
	rng := arbitrary.NewRandRNG(4)
	p, ok := shrunk.Pick(rng)
	require.True(t, ok)
	n, err := strconv.ParseInt(p.Value.(string), 10, 64)
	require.NoError(t, err)
	assert.Less(t, n, int64(80))
}
