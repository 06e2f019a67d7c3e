// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call-site context); tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that the requested node count is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or edge endpoint is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that literal rows do not form an n×n grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals that a literal matrix carries a non-zero self-distance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal must be zero")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, e.g. "New: matrix: index out of range".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
