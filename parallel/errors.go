// SPDX-License-Identifier: MIT

package parallel

import "errors"

// Sentinel errors returned by Run. Configuration errors are always returned
// before any worker is spawned; they wrap ErrConfiguration so callers can
// match the whole class with errors.Is.
var (
	// ErrConfiguration marks invalid Run arguments (node count, worker count, source).
	ErrConfiguration = errors.New("parallel: invalid configuration")

	// ErrNilMatrix indicates that a nil *matrix.Distance was passed.
	ErrNilMatrix = errors.New("parallel: matrix is nil")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("parallel: worker count must be > 0")

	// ErrBadSource indicates a source node outside [0,n).
	ErrBadSource = errors.New("parallel: source node out of range")

	// ErrInvariantViolation signals an internal bug detected by WithInvariantChecks.
	ErrInvariantViolation = errors.New("parallel: internal invariant violated")

	// ErrWorkerPanic wraps a panic recovered from a worker goroutine.
	ErrWorkerPanic = errors.New("parallel: worker panicked")
)
