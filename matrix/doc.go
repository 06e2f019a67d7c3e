// SPDX-License-Identifier: MIT

// Package matrix holds the dense distance matrix consumed by the
// shortest-path kernels.
//
// A Distance is an n×n grid of int64 weights stored row-major in one flat
// slice. Missing edges carry the Inf sentinel, the diagonal is 0, and a
// matrix never changes after a builder returns it, so it can be shared by any
// number of reader goroutines without locks.
//
// Builders:
//
//   - New(n, edges, opts...) - from a weighted edge list (undirected by default).
//   - FromRows(rows)         - from literal rows (square, zero diagonal).
//   - Demo()                 - the six-node demonstration graph.
//
// Reference kernel:
//
//   - FloydWarshall(d) - all-pairs closure, used to cross-check single-source runs.
//
// Negative weights are not rejected by the builders; shortest-path results on
// such matrices are undefined.
package matrix
