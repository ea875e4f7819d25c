package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

func TestArray_SizeIsGeometricSum(t *testing.T) {
	inner := arbitrary.Integer(1, 2) // size 2
	a := arbitrary.Array(inner, 1, 3)
	// 2^1 + 2^2 + 2^3 = 2+4+8 = 14
	assert.Equal(t, 14.0, a.Size().Value)
}

func TestArray_PickRespectsLengthBounds(t *testing.T) {
	a := arbitrary.Array(arbitrary.Integer(0, 9), 2, 5)
	rng := arbitrary.NewRandRNG(11)
	for i := 0; i < 50; i++ {
		p, ok := a.Pick(rng)
		require.True(t, ok)
		vs := p.Value.([]arbitrary.Value)
		assert.GreaterOrEqual(t, len(vs), 2)
		assert.LessOrEqual(t, len(vs), 5)
		assert.True(t, a.CanGenerate(p))
	}
}

func TestArray_ShrinkHalvesLength(t *testing.T) {
	a := arbitrary.Array(arbitrary.Integer(0, 9), 0, 20)
	initial := arbitrary.NewPick(make([]arbitrary.Value, 10))
	shrunk := a.Shrink(initial)
	rng := arbitrary.NewRandRNG(5)
	p, ok := shrunk.Pick(rng)
	require.True(t, ok)
	assert.LessOrEqual(t, len(p.Value.([]arbitrary.Value)), 5)
}

func TestTuple_SizeIsProduct(t *testing.T) {
	tup := arbitrary.Tuple(arbitrary.Integer(1, 10), arbitrary.Integer(1, 3))
	assert.Equal(t, 30.0, tup.Size().Value)
}

func TestTuple_NoArbitraryChildAbsorbs(t *testing.T) {
	tup := arbitrary.Tuple(arbitrary.Integer(1, 10), arbitrary.NoArbitrary())
	assert.True(t, arbitrary.IsNoArbitrary(tup))
}

func TestTuple_PickAndCanGenerate(t *testing.T) {
	tup := arbitrary.Tuple(arbitrary.Integer(0, 9), arbitrary.Boolean())
	rng := arbitrary.NewRandRNG(2)
	p, ok := tup.Pick(rng)
	require.True(t, ok)
	assert.True(t, tup.CanGenerate(p))
	vs := p.Value.([]arbitrary.Value)
	assert.Len(t, vs, 2)
}

func TestRecord_SchemaValidation(t *testing.T) {
	_, err := arbitrary.Record(nil)
	assert.ErrorIs(t, err, arbitrary.ErrSchemaValidation)

	_, err = arbitrary.Record(map[string]arbitrary.Arbitrary{"a": nil})
	assert.ErrorIs(t, err, arbitrary.ErrSchemaValidation)
}

func TestRecord_PickProducesAllFields(t *testing.T) {
	r, err := arbitrary.Record(map[string]arbitrary.Arbitrary{
		"age":  arbitrary.Integer(0, 120),
		"name": arbitrary.Constant("a"),
	})
	require.NoError(t, err)

	rng := arbitrary.NewRandRNG(6)
	p, ok := r.Pick(rng)
	require.True(t, ok)
	m := p.Value.(map[string]arbitrary.Value)
	assert.Contains(t, m, "age")
	assert.Contains(t, m, "name")
	assert.True(t, r.CanGenerate(p))
}

func TestSet_ElementsAreDistinct(t *testing.T) {
	s := arbitrary.Set(arbitrary.Integer(0, 5), 3, 3)
	rng := arbitrary.NewRandRNG(77)
	p, ok := s.Pick(rng)
	require.True(t, ok)
	vs := p.Value.([]arbitrary.Value)
	seen := map[int64]bool{}
	for _, v := range vs {
		iv := v.(int64)
		assert.False(t, seen[iv], "set elements must be pairwise distinct")
		seen[iv] = true
	}
}
