package arbitrary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
)

func TestFiltered_OnlyAcceptsPredicate(t *testing.T) {
	base := arbitrary.Integer(-100, 100)
	f := arbitrary.Filtered(base, func(v arbitrary.Value) bool {
		return v.(int64) > 50
	})

	rng := arbitrary.NewRandRNG(7)
	count := 0
	for i := 0; i < 200; i++ {
		p, ok := f.Pick(rng)
		if !ok {
			continue
		}
		count++
		assert.Greater(t, p.Value.(int64), int64(50))
		assert.True(t, f.CanGenerate(p))
	}
	assert.Greater(t, count, 0, "a 50/200 acceptance rate should still yield some picks")
}

func TestFiltered_ExhaustsOnImpossiblePredicate(t *testing.T) {
	base := arbitrary.Integer(0, 99)
	f := arbitrary.Filtered(base, func(v arbitrary.Value) bool {
		return v.(int64) > 200
	})

	rng := arbitrary.NewRandRNG(1)
	exhausted := false
	for i := 0; i < 50; i++ {
		_, ok := f.Pick(rng)
		if !ok {
			exhausted = true
			break
		}
	}
	assert.True(t, exhausted, "an impossible predicate must exhaust within a bounded number of picks")
}

func TestFiltered_SizeUsesPosteriorMode(t *testing.T) {
	base := arbitrary.Integer(1, 100)
	f := arbitrary.Filtered(base, func(v arbitrary.Value) bool { return v.(int64) <= 50 })

	rng := arbitrary.NewRandRNG(3)
	for i := 0; i < 30; i++ {
		_, _ = f.Pick(rng)
	}

	sz := f.Size()
	assert.False(t, sz.Exact)
	assert.GreaterOrEqual(t, sz.Value, 0.0)
	assert.LessOrEqual(t, sz.Lo, sz.Value)
	assert.LessOrEqual(t, sz.Value, sz.Hi)
}

func TestFiltered_ShrinkPreservesPredicate(t *testing.T) {
	base := arbitrary.Integer(-100, 100)
	pred := func(v arbitrary.Value) bool { return v.(int64) > 10 }
	f := arbitrary.Filtered(base, pred)

	initial := arbitrary.NewPick(int64(90))
	require.True(t, f.CanGenerate(initial))

	shrunk := f.Shrink(initial)
	rng := arbitrary.NewRandRNG(9)
	for i := 0; i < 20; i++ {
		p, ok := shrunk.Pick(rng)
		if !ok {
			continue
		}
		assert.True(t, pred(p.Value), "every shrunk pick must still satisfy the filter predicate")
	}
}
