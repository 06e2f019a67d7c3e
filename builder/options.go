// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// options.go - functional options for Build.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption mutates a builderConfig before a topology runs.
type BuilderOption func(*builderConfig)

// WithRand sets the random source used by stochastic topologies and weights.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("WithRand: nil *rand.Rand")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh random source; equal seeds give identical matrices.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight sampler. Panics if fn is nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: nil weight function")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDirected emits each topology edge in one direction only (u→v for the
// generator's natural order) instead of mirroring it.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// UniformWeight returns a weight sampler uniform on [min,max].
// Panics if min < 0 or max < min. Without a random source it yields min.
func UniformWeight(min, max int64) func(*rand.Rand) int64 {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
