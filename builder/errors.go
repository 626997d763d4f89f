// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, min, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, k)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition
// (e.g. a nil Constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownFamily indicates that Family was asked for a name it does not know.
var ErrUnknownFamily = errors.New("builder: unknown graph family")

// ErrBadParams indicates a wrong number of parameters for a family.
var ErrBadParams = errors.New("builder: wrong number of family parameters")

// ErrTooLarge indicates that a family's parameters would exceed the vertex or
// edge limit set with WithMaxSize.
var ErrTooLarge = errors.New("builder: family exceeds size limit")
