package beta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/beta"
)

func TestNew_RejectsInvalidParams(t *testing.T) {
	_, err := beta.New(0, 1)
	assert.ErrorIs(t, err, beta.ErrInvalidParam)

	_, err = beta.New(1, -1)
	assert.ErrorIs(t, err, beta.ErrInvalidParam)
}

func TestMode_FallsBackToMeanBelowOne(t *testing.T) {
	p, err := beta.New(0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, p.Mean(), p.Mode())
}

func TestMode_ModeFormula(t *testing.T) {
	p, err := beta.New(3, 2)
	require.NoError(t, err)
	// (3-1)/(3+2-2) = 2/3
	assert.InDelta(t, 2.0/3.0, p.Mode(), 1e-9)
}

func TestUpdate_IncrementsShapeParams(t *testing.T) {
	p, err := beta.New(1, 1)
	require.NoError(t, err)

	p.Update(true)
	assert.Equal(t, 2.0, p.Alpha)
	assert.Equal(t, 1.0, p.Beta)

	p.Update(false)
	assert.Equal(t, 2.0, p.Alpha)
	assert.Equal(t, 2.0, p.Beta)
}

func TestInv_RejectsOutOfRangeQuantile(t *testing.T) {
	p, err := beta.New(2, 2)
	require.NoError(t, err)

	_, err = p.Inv(0)
	assert.ErrorIs(t, err, beta.ErrInvalidQuantile)
	_, err = p.Inv(1)
	assert.ErrorIs(t, err, beta.ErrInvalidQuantile)
}

func TestInv_MonotoneInQuantile(t *testing.T) {
	p, err := beta.New(5, 3)
	require.NoError(t, err)

	lo, err := p.Inv(0.05)
	require.NoError(t, err)
	mid, err := p.Inv(0.5)
	require.NoError(t, err)
	hi, err := p.Inv(0.95)
	require.NoError(t, err)

	assert.Less(t, lo, mid)
	assert.Less(t, mid, hi)
}

func TestInv_MonotoneInAlpha(t *testing.T) {
	lowAlpha, err := beta.New(2, 5)
	require.NoError(t, err)
	highAlpha, err := beta.New(10, 5)
	require.NoError(t, err)

	qLow, err := lowAlpha.Inv(0.5)
	require.NoError(t, err)
	qHigh, err := highAlpha.Inv(0.5)
	require.NoError(t, err)

	assert.Less(t, qLow, qHigh, "higher alpha shifts the distribution mass to the right")
}

func TestCredibleInterval_ContainsMean(t *testing.T) {
	p, err := beta.New(20, 5)
	require.NoError(t, err)

	lo, hi, err := p.CredibleInterval(beta.DefaultCredibleLevel)
	require.NoError(t, err)
	mean := p.Mean()

	assert.LessOrEqual(t, lo, mean)
	assert.LessOrEqual(t, mean, hi)
}

func TestNewWarmed_BiasesTowardAcceptance(t *testing.T) {
	p := beta.NewWarmed(2, 1)
	// 2 + 9 accepts, 1 + 1 rejects from the base (2,1) plus the 9/1
	// deterministic warm-up stream.
	assert.Equal(t, 11.0, p.Alpha)
	assert.Equal(t, 2.0, p.Beta)
	assert.Greater(t, p.Mode(), 0.5)
}

func TestNewWarmed_Deterministic(t *testing.T) {
	a := beta.NewWarmed(2, 1)
	b := beta.NewWarmed(2, 1)
	assert.Equal(t, a.Alpha, b.Alpha)
	assert.Equal(t, a.Beta, b.Beta)
}

func TestCDF_MatchesInv(t *testing.T) {
	p, err := beta.New(5, 3)
	require.NoError(t, err)

	q, err := p.Inv(0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.CDF(q), 1e-6)
}

func TestCDF_MonotoneIncreasing(t *testing.T) {
	p, err := beta.New(3, 3)
	require.NoError(t, err)

	assert.Less(t, p.CDF(0.2), p.CDF(0.8))
}
