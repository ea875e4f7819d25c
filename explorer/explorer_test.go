package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/explorer"
	"github.com/katalvlaran/lvlath/sampler"
)

func TestExplorer_ForallPassesWhenAlwaysTrue(t *testing.T) {
	a := arbitrary.Integer(1, 100)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Forall, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(1))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return b["n"].(int64) >= 1, nil
		},
		Budget: explorer.Budget{MaxTests: 50},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Passed, res.Outcome)
	assert.Equal(t, 50, res.Snapshot.TestsRun)
}

func TestExplorer_ForallFailsAndCapturesCounterexample(t *testing.T) {
	a := arbitrary.Integer(1, 100)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Forall, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(2))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return b["n"].(int64) < 50, nil
		},
		Budget: explorer.Budget{MaxTests: 200},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Failed, res.Outcome)
	require.NotNil(t, res.Counterexample)
	assert.GreaterOrEqual(t, res.Counterexample["n"].(int64), int64(50))
}

func TestExplorer_ExistsFindsWitness(t *testing.T) {
	a := arbitrary.Integer(1, 100)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Exists, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(3))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return b["n"].(int64) == 7, nil
		},
		Budget: explorer.Budget{MaxTests: 500},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Passed, res.Outcome)
	require.NotNil(t, res.Witness)
	assert.Equal(t, int64(7), res.Witness["n"])
}

func TestExplorer_ExistsExhaustsWithoutWitness(t *testing.T) {
	a := arbitrary.Integer(1, 10)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Exists, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(4))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return b["n"].(int64) > 1000, nil
		},
		Budget: explorer.Budget{MaxTests: 30},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Exhausted, res.Outcome)
}

func TestExplorer_PreconditionDiscardsTests(t *testing.T) {
	a := arbitrary.Integer(1, 100)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Forall, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(5))},
		},
		Precondition: func(b explorer.Bindings) bool {
			return b["n"].(int64)%2 == 0
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return true, nil
		},
		Budget: explorer.Budget{MaxTests: 40},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Passed, res.Outcome)
	assert.Greater(t, res.Snapshot.TestsDiscarded, 0)
	assert.Less(t, res.Snapshot.TestsRun, 40)
}

func TestExplorer_NestedForallExists(t *testing.T) {
	outer := arbitrary.Integer(1, 5)
	inner := arbitrary.Integer(1, 5)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "x", Kind: explorer.Forall, Arb: outer, Sampler: sampler.Uniform(outer, sampler.WithSeed(6))},
			{Name: "y", Kind: explorer.Exists, Arb: inner, Sampler: sampler.Uniform(inner, sampler.WithSeed(7))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) {
			return b["x"].(int64) == b["y"].(int64), nil
		},
		Budget: explorer.Budget{MaxTests: 20},
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Passed, res.Outcome)
}

func TestExplorer_FixedStoppingRuleCapsEarly(t *testing.T) {
	a := arbitrary.Integer(1, 1000)
	e := &explorer.Explorer{
		Quantifiers: []explorer.Quantifier{
			{Name: "n", Kind: explorer.Forall, Arb: a, Sampler: sampler.Uniform(a, sampler.WithSeed(8))},
		},
		Predicate: func(b explorer.Bindings) (bool, error) { return true, nil },
		Budget:    explorer.Budget{MaxTests: 500, ConfidenceCheckInterval: 10},
		Stopping:  explorer.Fixed(20),
	}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, explorer.Passed, res.Outcome)
	assert.LessOrEqual(t, res.Snapshot.TestsRun, 30)
}
