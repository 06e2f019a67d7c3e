// SPDX-License-Identifier: MIT

// Package partition splits the node index range [0,n) into w contiguous,
// pairwise-disjoint inclusive ranges, one per worker.
//
// Worker k owns [floor(k·n/w), floor((k+1)·n/w) − 1]. The plan is
// deterministic in (n, w), ordered by worker id, and covers every node exactly
// once. When w > n some ranges are empty.
package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a non-positive node or worker count.
var ErrInvalidSize = errors.New("partition: node and worker counts must be > 0")

// ErrBadCoverage indicates that a set of ranges does not cover [0,n) exactly once.
var ErrBadCoverage = errors.New("partition: ranges do not cover the node range exactly once")

// Range is an inclusive node index interval [Start, End].
// A range with End < Start is empty.
type Range struct {
	Start int
	End   int
}

// Len returns the number of nodes in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// Empty reports whether r owns no node.
func (r Range) Empty() bool { return r.End < r.Start }

// Contains reports whether node i lies in r.
func (r Range) Contains(i int) bool { return i >= r.Start && i <= r.End }

// String renders r as "[start,end]", or "[]" when empty.
func (r Range) String() string {
	if r.Empty() {
		return "[]"
	}

	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Plan returns w ranges covering [0,n).
// Complexity: O(w).
func Plan(n, w int) ([]Range, error) {
	if n <= 0 || w <= 0 {
		return nil, fmt.Errorf("Plan(n=%d, w=%d): %w", n, w, ErrInvalidSize)
	}

	ranges := make([]Range, w)
	for k := 0; k < w; k++ {
		ranges[k] = bounds(n, w, k)
	}

	return ranges, nil
}

// bounds computes worker k's range. Products are taken in int; n and w are
// node and worker counts, far below the overflow threshold in practice.
func bounds(n, w, k int) Range {
	return Range{
		Start: (k * n) / w,
		End:   ((k+1)*n)/w - 1,
	}
}

// Owner returns the id of the worker whose range contains node i,
// or -1 when the arguments are out of range.
func Owner(n, w, i int) int {
	if n <= 0 || w <= 0 || i < 0 || i >= n {
		return -1
	}
	// Start from the proportional guess and step to the owning range.
	k := (i * w) / n
	for k > 0 && bounds(n, w, k).Start > i {
		k--
	}
	for k < w-1 && bounds(n, w, k).End < i {
		k++
	}

	return k
}

// Verify checks that ranges cover [0,n) exactly once, in order, with no overlap.
func Verify(n int, ranges []Range) error {
	next := 0
	for k, r := range ranges {
		if r.Empty() {
			continue
		}
		if r.Start != next {
			return fmt.Errorf("worker %d range %s starts at %d, want %d: %w", k, r, r.Start, next, ErrBadCoverage)
		}
		next = r.End + 1
	}
	if next != n {
		return fmt.Errorf("ranges end at %d, want %d: %w", next, n, ErrBadCoverage)
	}

	return nil
}
