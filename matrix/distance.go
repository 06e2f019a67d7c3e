// SPDX-License-Identifier: MIT
// Package matrix: Distance is the dense, row-major N×N edge-weight grid used by
// the shortest-path kernels. It is read-only once a builder returns it.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Inf is the sentinel weight meaning "no direct edge" (or "no known path" in
// distance vectors). It compares greater than every real weight.
const Inf int64 = math.MaxInt64

// Distance is an immutable n×n matrix of int64 edge weights.
// n is the node count and data holds n*n elements in row-major order.
// The diagonal is always 0; Inf marks a missing edge.
//
// Concurrency: a *Distance is never mutated after construction, so any number
// of goroutines may read it without synchronization.
type Distance struct {
	n    int     // node count
	data []int64 // flat backing storage, len == n*n
}

// newDistance allocates an n×n matrix with Inf off-diagonal and 0 on the diagonal.
// Complexity: O(n^2).
func newDistance(n int) *Distance {
	data := make([]int64, n*n)
	var i int
	for i = range data {
		data[i] = Inf
	}
	for i = 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Distance{n: n, data: data}
}

// Size returns the node count n.
// Complexity: O(1).
func (d *Distance) Size() int {
	return d.n
}

// At returns the weight of edge i→j, or ErrOutOfRange.
// Complexity: O(1).
func (d *Distance) At(i, j int) (int64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Distance.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Weight returns the weight of edge i→j without bounds reporting.
// It is the hot-path accessor for kernels that have already validated their
// index ranges; out-of-range indices panic like a slice access.
func (d *Distance) Weight(i, j int) int64 {
	return d.data[i*d.n+j]
}

// HasEdge reports whether a finite direct edge i→j exists (i != j).
func (d *Distance) HasEdge(i, j int) bool {
	if i == j || i < 0 || i >= d.n || j < 0 || j >= d.n {
		return false
	}

	return d.data[i*d.n+j] != Inf
}

// Row returns a copy of row i: the one-hop distances from node i.
// Complexity: O(n).
func (d *Distance) Row(i int) ([]int64, error) {
	if i < 0 || i >= d.n {
		return nil, fmt.Errorf("Distance.Row(%d): %w", i, ErrOutOfRange)
	}
	row := make([]int64, d.n)
	copy(row, d.data[i*d.n:(i+1)*d.n])

	return row, nil
}

// Clone returns a deep copy.
// Complexity: O(n^2).
func (d *Distance) Clone() *Distance {
	data := make([]int64, len(d.data))
	copy(data, d.data)

	return &Distance{n: d.n, data: data}
}

// Equal reports whether d and other have the same size and entries.
func (d *Distance) Equal(other *Distance) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.n != other.n {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix one row per line, printing "Inf" for the sentinel.
func (d *Distance) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(FormatWeight(d.data[i*d.n+j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatWeight renders w, using "Inf" for the sentinel.
func FormatWeight(w int64) string {
	if w == Inf {
		return "Inf"
	}

	return fmt.Sprintf("%d", w)
}

// SaturatingAdd returns a+b, or Inf when either operand is Inf or the sum
// would overflow. Weights are assumed non-negative.
func SaturatingAdd(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	if b > 0 && a > Inf-b {
		return Inf
	}

	return a + b
}
