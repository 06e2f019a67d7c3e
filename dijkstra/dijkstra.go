// SPDX-License-Identifier: MIT
// Package dijkstra implements the sequential, heap-based Dijkstra algorithm
// over a dense distance matrix. It is the trusted reference the parallel
// team implementation is checked against.
//
// Complexity:
//
//   - Time:  O(V^2 log V) on a dense matrix (each of V pops scans a full row).
//   - Space: O(V) for distances and predecessors plus O(V^2) worst-case heap
//     entries under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - We scan all weights up front (O(V^2)) to detect negative weights and fail fast.
//   - We treat any weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Additions saturate at matrix.Inf.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/teampath/matrix"
)

// Dijkstra computes shortest distances from Options.Source to every node of m.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, or matrix.Inf if unreachable.
//   - prev: predecessor slice if ReturnPath is set (nil otherwise);
//     prev[v] == NoPredecessor for the source and for unreachable nodes.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. Source must be in [0,n) (ErrVertexNotFound).
//  3. MaxDistance must be >= 0 (ErrBadMaxDistance).
//  4. InfEdgeThreshold must be > 0 (ErrBadInfThreshold).
//  5. No off-diagonal weight may be negative (ErrNegativeWeight).
func Dijkstra(m *matrix.Distance, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	n := m.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadMaxDistance, cfg.MaxDistance)
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadInfThreshold, cfg.InfEdgeThreshold)
	}

	// 3) Pre-scan for negative weights.
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if w := m.Weight(u, v); w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Prepare state and run.
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *matrix.Distance // read-only input
	options Options
	dist    []int64 // node → current best distance from Source
	prev    []int   // node → predecessor; nil unless ReturnPath
	visited []bool  // node → distance finalized
	pq      nodePQ  // min-heap with lazy decrease-key
}

// init sets dist to Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = matrix.Inf
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its row.
// It stops when the heap empties or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines row u and improves tentative distances of its neighbors.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	n := r.m.Size()
	var w, newDist int64
	for v := 0; v < n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		w = r.m.Weight(u, v)
		if w == matrix.Inf || w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = matrix.SaturatingAdd(r.dist[u], w)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates for equal distances.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// Path rebuilds the node sequence source → … → target from a predecessor
// slice returned with WithReturnPath. It returns nil when target is out of
// range or unreachable (no predecessor and not the path root).
func Path(prev []int, dist []int64, target int) []int {
	if target < 0 || target >= len(prev) || target >= len(dist) || dist[target] == matrix.Inf {
		return nil
	}

	var rev []int
	for v := target; v != NoPredecessor; v = prev[v] {
		rev = append(rev, v)
		if len(rev) > len(prev) {
			// Malformed predecessor slice (cycle).
			return nil
		}
	}

	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}

// nodeItem is a node and its tentative distance, stored in the heap.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by lower id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index for deterministic pops.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a *nodeItem) onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
