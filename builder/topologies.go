// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// topologies.go - deterministic and random graph shapes.
//
// Every topology numbers its nodes 0..n-1 and emits edges in ascending
// (u, v) order, sampling one weight per edge from the configured WeightFn.

package builder

import (
	"github.com/katalvlaran/teampath/matrix"
)

// Method tags and minimum sizes.
const (
	methodComplete     = "Complete"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	MinPathNodes  = 1
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

// Complete returns K_n: every pair of distinct nodes is connected.
// Complexity: O(n^2) edges.
func Complete(n int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < 1 {
			return 0, nil, builderErrorf(methodComplete, "n=%d < 1", ErrTooFewVertices, n)
		}
		edges := make([]matrix.Edge, 0, n*(n-1)/2)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				edges = append(edges, matrix.Edge{From: u, To: v, Weight: cfg.weight()})
			}
		}

		return n, edges, nil
	}
}

// Path returns the chain 0-1-...-(n-1).
func Path(n int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < MinPathNodes {
			return 0, nil, builderErrorf(methodPath, "n=%d < min=%d", ErrTooFewVertices, n, MinPathNodes)
		}

		return n, chain(cfg, 0, n), nil
	}
}

// Cycle returns the ring 0-1-...-(n-1)-0.
func Cycle(n int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < MinCycleNodes {
			return 0, nil, builderErrorf(methodCycle, "n=%d < min=%d", ErrTooFewVertices, n, MinCycleNodes)
		}
		edges := chain(cfg, 0, n)
		edges = append(edges, matrix.Edge{From: n - 1, To: 0, Weight: cfg.weight()})

		return n, edges, nil
	}
}

// Star returns a hub (node 0) connected to n-1 leaves.
func Star(n int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < MinStarNodes {
			return 0, nil, builderErrorf(methodStar, "n=%d < min=%d", ErrTooFewVertices, n, MinStarNodes)
		}

		return n, spokes(cfg, n), nil
	}
}

// Wheel returns a hub (node 0) connected to every node of the rim cycle 1..n-1.
func Wheel(n int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < MinWheelNodes {
			return 0, nil, builderErrorf(methodWheel, "n=%d < min=%d", ErrTooFewVertices, n, MinWheelNodes)
		}
		edges := spokes(cfg, n)
		edges = append(edges, chain(cfg, 1, n)...)
		edges = append(edges, matrix.Edge{From: n - 1, To: 1, Weight: cfg.weight()})

		return n, edges, nil
	}
}

// Grid returns a rows×cols 4-neighbour lattice; node (r,c) is r*cols+c.
// Complexity: O(rows*cols) edges.
func Grid(rows, cols int) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if rows < MinGridDim || cols < MinGridDim {
			return 0, nil, builderErrorf(methodGrid, "rows=%d cols=%d < min=%d", ErrTooFewVertices, rows, cols, MinGridDim)
		}
		var edges []matrix.Edge
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					edges = append(edges, matrix.Edge{From: u, To: u + 1, Weight: cfg.weight()})
				}
				if r+1 < rows {
					edges = append(edges, matrix.Edge{From: u, To: u + cols, Weight: cfg.weight()})
				}
			}
		}

		return rows * cols, edges, nil
	}
}

// RandomSparse includes each admissible pair independently with probability
// p: unordered pairs u<v, or every ordered pair u≠v under WithDirected.
// A random source is required when 0 < p < 1.
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64) Topology {
	return func(cfg builderConfig) (int, []matrix.Edge, error) {
		if n < 1 {
			return 0, nil, builderErrorf(methodRandomSparse, "n=%d < 1", ErrTooFewVertices, n)
		}
		if p < 0 || p > 1 {
			return 0, nil, builderErrorf(methodRandomSparse, "p=%.6f not in [0,1]", ErrInvalidProbability, p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return 0, nil, builderErrorf(methodRandomSparse, "p=%.6f", ErrNeedRandSource, p)
		}

		var edges []matrix.Edge
		for u := 0; u < n; u++ {
			v := u + 1
			if cfg.directed {
				v = 0
			}
			for ; v < n; v++ {
				if u == v {
					continue
				}
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					edges = append(edges, matrix.Edge{From: u, To: v, Weight: cfg.weight()})
				}
			}
		}

		return n, edges, nil
	}
}

// chain emits from-(from+1)-...-(to-1).
func chain(cfg builderConfig, from, to int) []matrix.Edge {
	edges := make([]matrix.Edge, 0, to-from)
	for u := from; u+1 < to; u++ {
		edges = append(edges, matrix.Edge{From: u, To: u + 1, Weight: cfg.weight()})
	}

	return edges
}

// spokes emits 0-1, 0-2, ..., 0-(n-1).
func spokes(cfg builderConfig, n int) []matrix.Edge {
	edges := make([]matrix.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, matrix.Edge{From: 0, To: v, Weight: cfg.weight()})
	}

	return edges
}
