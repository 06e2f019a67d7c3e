// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// api.go - public entry point.
//
// Design contract:
//   - One orchestrator: Build(topology, opts...) resolves the configuration,
//     runs the topology and hands the edge list to matrix.New.
//   - Determinism: same topology, options and seed ⇒ identical matrices.
//   - Safety: topologies return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/teampath/matrix"
)

// Topology produces a node count and an edge list for the resolved config.
// Implementations validate parameters first and emit edges in a stable order.
type Topology func(cfg builderConfig) (n int, edges []matrix.Edge, err error)

// Build runs t and returns the resulting distance matrix. Edges are mirrored
// unless WithDirected is set.
//
// Complexity: cost of t plus O(n^2 + E) for the matrix.
func Build(t Topology, opts ...BuilderOption) (*matrix.Distance, error) {
	if t == nil {
		return nil, fmt.Errorf("Build: nil topology: %w", ErrUnknownTopology)
	}
	cfg := newBuilderConfig(opts...)

	n, edges, err := t(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	var mopts []matrix.Option
	if cfg.directed {
		mopts = append(mopts, matrix.WithDirected())
	}
	m, err := matrix.New(n, edges, mopts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}
