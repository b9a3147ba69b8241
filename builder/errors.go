// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
// Supply one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEdgeRefused indicates the target graph rejected an emitted edge: its
// identity was already used or its endpoints were already linked.
var ErrEdgeRefused = errors.New("builder: edge refused by graph")

// ErrConstructFailed indicates a malformed build request, such as a nil
// Constructor or an incomplete Scheme.
var ErrConstructFailed = errors.New("builder: construction failed")
