// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w (method tag, offending values).
//   - Topologies never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic topology was built without a
// random source (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates a topology string that Parse cannot read.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// builderErrorf attaches method context to a sentinel.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
