// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// config.go - resolved, immutable configuration shared by every topology.

package builder

import "math/rand"

// defaultConstWeight is the edge weight used when no WeightFn is set.
const defaultConstWeight = int64(1)

// builderConfig is resolved once per Build call from BuilderOption values.
type builderConfig struct {
	rng      *rand.Rand             // nil unless WithSeed/WithRand is given
	weightFn func(*rand.Rand) int64 // edge weight sampler
	directed bool                   // emit one-way edges instead of mirrored ones
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// weight samples one edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
