// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for the edge-list builder.
//
// Defaults mirror the demonstration graph: undirected edges, last write wins
// when the same pair is listed twice.

package matrix

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultDirected controls whether an edge (u,v) also fills (v,u).
	DefaultDirected = false

	// DefaultKeepMin keeps the smaller weight on duplicate pairs when true;
	// otherwise the later edge overwrites the earlier one.
	DefaultKeepMin = false
)

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective builder configuration.
type Options struct {
	directed bool // DefaultDirected
	keepMin  bool // DefaultKeepMin
}

// WithDirected treats every edge as one-way u→v.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected mirrors every edge into both (u,v) and (v,u). This is the default.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithKeepMin resolves duplicate pairs by keeping the smallest weight.
func WithKeepMin() Option {
	return func(o *Options) { o.keepMin = true }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		directed: DefaultDirected,
		keepMin:  DefaultKeepMin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
