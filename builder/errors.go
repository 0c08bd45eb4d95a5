// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewLocations indicates a size parameter below the constructor's minimum.
var ErrTooFewLocations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrNegativeRate indicates that the rate function returned a negative value.
var ErrNegativeRate = errors.New("builder: negative rate")
