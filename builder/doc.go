// SPDX-License-Identifier: MIT

// Package builder generates distance matrices of common shapes for tests,
// benchmarks and the teampath command line.
//
// A Topology (Complete, Path, Cycle, Star, Wheel, Grid, RandomSparse) emits
// a deterministic edge list; Build resolves the functional options and turns
// it into a *matrix.Distance:
//
//	m, err := builder.Build(builder.RandomSparse(200, 0.05),
//		builder.WithSeed(7),
//		builder.WithWeightFn(builder.UniformWeight(1, 100)))
//
// Guarantees:
//   - Same topology, options and seed ⇒ identical matrix.
//   - Invalid sizes or probabilities return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); only option constructors panic.
//   - Parse reads the textual form used by "teampath run --generate".
package builder
