// SPDX-License-Identifier: MIT

package parallel

import (
	"strings"
	"time"

	"github.com/katalvlaran/teampath/matrix"
)

// Result is the finished minimum-distance vector of one Run plus run
// metadata. It is read-only: accessors return copies.
type Result struct {
	dist      []int64
	source    int
	workers   int
	rounds    int
	connected int
	elapsed   time.Duration
}

// newResult freezes the shared state into a Result.
func newResult(s *shared, workers int, elapsed time.Duration) *Result {
	dist := make([]int64, len(s.mind))
	copy(dist, s.mind)

	return &Result{
		dist:      dist,
		source:    s.opts.Source,
		workers:   workers,
		rounds:    s.rounds,
		connected: s.connectedCount,
		elapsed:   elapsed,
	}
}

// Distances returns a copy of the distance vector; matrix.Inf marks
// unreachable nodes.
func (r *Result) Distances() []int64 {
	out := make([]int64, len(r.dist))
	copy(out, r.dist)

	return out
}

// Distance returns the distance of node i, or matrix.Inf when i is out of range.
func (r *Result) Distance(i int) int64 {
	if i < 0 || i >= len(r.dist) {
		return matrix.Inf
	}

	return r.dist[i]
}

// Reachable reports whether node i has a finite distance.
func (r *Result) Reachable(i int) bool { return r.Distance(i) != matrix.Inf }

// Unreachable lists the nodes left at matrix.Inf, in ascending order.
func (r *Result) Unreachable() []int {
	var out []int
	for i, d := range r.dist {
		if d == matrix.Inf {
			out = append(out, i)
		}
	}

	return out
}

// Len returns the node count.
func (r *Result) Len() int { return len(r.dist) }

// Source returns the source node.
func (r *Result) Source() int { return r.source }

// Workers returns the team size used.
func (r *Result) Workers() int { return r.workers }

// Rounds returns the number of rounds entered: n−1 unless WithEarlyExit
// stopped the team sooner.
func (r *Result) Rounds() int { return r.rounds }

// Connected returns the size of the final connected set.
func (r *Result) Connected() int { return r.connected }

// Elapsed returns the wall-clock time spent by the team.
func (r *Result) Elapsed() time.Duration { return r.elapsed }

// Equal reports whether r and other hold the same source and distances.
// Run metadata (workers, rounds, elapsed) is ignored.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.source != other.source || len(r.dist) != len(other.dist) {
		return false
	}
	for i := range r.dist {
		if r.dist[i] != other.dist[i] {
			return false
		}
	}

	return true
}

// String renders the distances space-separated, "Inf" for unreachable nodes.
func (r *Result) String() string {
	parts := make([]string, len(r.dist))
	for i, d := range r.dist {
		parts[i] = matrix.FormatWeight(d)
	}

	return strings.Join(parts, " ")
}
