// SPDX-License-Identifier: MIT
// Package matrix: builders. These are the only code paths that write into a
// Distance; once returned, a matrix is never modified again.

package matrix

import "fmt"

const (
	opNew      = "New"
	opFromRows = "FromRows"
)

// Edge is a weighted connection between two node indices.
// Weights are expected to be non-negative; negative weights are accepted
// without validation and give undefined shortest-path results.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// New builds an n×n distance matrix from a weighted edge list.
//
// Stage 1 (Validate): n > 0; every endpoint in [0,n).
// Stage 2 (Prepare): allocate with Inf off-diagonal, 0 on the diagonal.
// Stage 3 (Execute): write each edge in list order (mirrored unless WithDirected).
//
// Self-loops are ignored: the self-distance stays 0. Duplicate pairs follow
// last-write-wins unless WithKeepMin is set.
//
// Complexity: O(n^2 + E).
func New(n int, edges []Edge, opts ...Option) (*Distance, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	cfg := gatherOptions(opts...)

	// Validate all endpoints before allocating so a bad list never half-builds.
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", opNew, k, e.From, e.To, ErrOutOfRange)
		}
	}

	d := newDistance(n)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		d.put(e.From, e.To, e.Weight, cfg.keepMin)
		if !cfg.directed {
			d.put(e.To, e.From, e.Weight, cfg.keepMin)
		}
	}

	return d, nil
}

// put writes w into (i,j) honoring the duplicate policy.
func (d *Distance) put(i, j int, w int64, keepMin bool) {
	idx := i*d.n + j
	if keepMin && d.data[idx] <= w {
		return
	}
	d.data[idx] = w
}

// FromRows builds a matrix from literal rows. rows must be square and
// non-empty with a zero diagonal; Inf entries mean "no edge".
// The input slices are copied.
// Complexity: O(n^2).
func FromRows(rows [][]int64) (*Distance, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}

	d := &Distance{n: n, data: make([]int64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", opFromRows, i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			if i == j && rows[i][j] != 0 {
				return nil, fmt.Errorf("%s: (%d,%d)=%d: %w", opFromRows, i, j, rows[i][j], ErrNonZeroDiagonal)
			}
			d.data[i*n+j] = rows[i][j]
		}
	}

	return d, nil
}

// Demo returns the six-node demonstration graph:
//
//	N0--15--N2-100--N3
//	  \      |     /
//	   40   20   10
//	     \   |   /
//	       N1
//	      /   \
//	     6     25
//	    /       \
//	  N5---8----N4
//
// Shortest distances from node 0 are [0 35 15 45 49 41].
func Demo() *Distance {
	d, err := New(DemoNodes, DemoEdges())
	if err != nil {
		// DemoEdges is a fixed, valid list.
		panic(err)
	}

	return d
}

// DemoNodes is the node count of the demonstration graph.
const DemoNodes = 6

// DemoEdges returns the undirected edge list of the demonstration graph.
func DemoEdges() []Edge {
	return []Edge{
		{From: 0, To: 1, Weight: 40},
		{From: 0, To: 2, Weight: 15},
		{From: 1, To: 2, Weight: 20},
		{From: 1, To: 3, Weight: 10},
		{From: 1, To: 4, Weight: 25},
		{From: 2, To: 3, Weight: 100},
		{From: 1, To: 5, Weight: 6},
		{From: 4, To: 5, Weight: 8},
	}
}
