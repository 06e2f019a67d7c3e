// SPDX-License-Identifier: MIT
// Package dijkstra defines errors and configuration options for the
// sequential reference implementation.
//
// Options:
//
//	– Source:           index of the starting node (default 0).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it stay Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilMatrix       if the matrix pointer is nil.
//	– ErrVertexNotFound  if the source index is outside [0,n).
//	– ErrNegativeWeight  if a negative edge weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/teampath/matrix"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilMatrix indicates that a nil *matrix.Distance was passed.
	ErrNilMatrix = errors.New("dijkstra: matrix is nil")

	// ErrVertexNotFound indicates that the source index is not a node of the matrix.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in matrix")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and unreachable nodes in the predecessor slice.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – must be ≥ 0. Default matrix.Inf (no cap).
// InfEdgeThreshold – must be > 0. Default matrix.Inf (only the sentinel is impassable).
type Options struct {
	Source           int   // index of the source node
	ReturnPath       bool  // whether to return the predecessor slice
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // weight at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node index.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Dijkstra returns ErrBadMaxDistance for negative values.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as missing.
// Dijkstra returns ErrBadInfThreshold for zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      matrix.Inf (explore all reachable).
//   - InfEdgeThreshold: matrix.Inf (only the sentinel is impassable).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      matrix.Inf,
		InfEdgeThreshold: matrix.Inf,
	}
}
