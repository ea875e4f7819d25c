package builder

import "errors"

// ErrTooFewVertices indicates a vertex count smaller than the constructor's
// minimum (RandomSparse requires n >= 1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (supply one via WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied, e.g. a
// nil Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
