// SPDX-License-Identifier: MIT

// Package dijkstra provides a sequential, heap-based implementation of
// Dijkstra's shortest-path algorithm over a dense matrix.Distance.
//
// Overview:
//
//   - Computes the minimum-cost path from one source node to every node,
//     with non-negative weights; unreachable nodes keep matrix.Inf.
//   - Runs on a single goroutine and serves as the trusted reference against
//     which the fixed-team parallel implementation (package parallel) is checked.
//   - Supports optional path reconstruction, distance caps and "impassable"
//     edge thresholds through functional options.
//
// API reference:
//
//	func Dijkstra(m *matrix.Distance, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - opts:
//	      • Source(int):                 starting node (default 0).
//	      • WithReturnPath():            return a predecessor slice; otherwise prev == nil.
//	      • WithMaxDistance(int64):      explore only nodes with distance ≤ value.
//	      • WithInfEdgeThreshold(int64): skip any edge whose weight ≥ threshold.
//
//	func Path(prev []int, dist []int64, target int) []int
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix, ErrVertexNotFound, ErrBadMaxDistance, ErrBadInfThreshold
//     and ErrNegativeWeight are returned by Dijkstra before any work starts.
//
// Performance and complexity:
//
//   - Time:  O(V^2 log V) on a dense matrix.
//   - Space: O(V) plus the lazy heap.
//
// Thread safety:
//
//   - The matrix is immutable, so concurrent calls on the same matrix are safe.
package dijkstra
