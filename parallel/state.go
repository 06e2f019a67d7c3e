// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/teampath/barrier"
	"github.com/katalvlaran/teampath/matrix"
)

// None is the vertex value of an empty candidate: no unconnected node found.
const None = -1

// designated is the id of the worker that performs every single-writer step.
const designated = 0

// cell is the shared reduction cell (md, mv): the best candidate reported so
// far in one round. report is the only method that may run concurrently.
type cell struct {
	mu sync.Mutex
	md int64 // best candidate distance
	mv int   // best candidate vertex, or None
}

// reset clears the cell. Single writer, never concurrent with report.
func (c *cell) reset() {
	c.md = matrix.Inf
	c.mv = None
}

// report merges a worker-local candidate: strictly smaller distance wins, so
// among equal distances the first reporter to enter keeps the cell.
func (c *cell) report(d int64, v int) {
	c.mu.Lock()
	if d < c.md {
		c.md = d
		c.mv = v
	}
	c.mu.Unlock()
}

// shared is the iteration state owned by the coordinator and handed to every
// worker by reference.
//
// Write partitioning:
//   - mind[i] is written only by the worker whose range contains i.
//   - connected, connectedCount, lastMD and rounds are written only by the
//     designated worker, between barrier-1 and barrier-2.
//   - cells[r%2] is written concurrently only through report; the designated
//     worker resets the other cell for the next round while nobody uses it.
//
// Reads of another worker's writes always cross a barrier first.
type shared struct {
	m              *matrix.Distance
	opts           Options
	mind           []int64
	connected      *bitset.BitSet
	connectedCount int
	lastMD         int64
	rounds         int
	cells          [2]cell
	bar            *barrier.Barrier

	failOnce sync.Once
	cause    error
}

// newShared builds the initial state: only source connected, mind = one-hop
// distances from source, first-round cell reset.
func newShared(m *matrix.Distance, workers int, opts Options) *shared {
	n := m.Size()
	s := &shared{
		m:              m,
		opts:           opts,
		mind:           make([]int64, n),
		connected:      bitset.New(uint(n)),
		connectedCount: 1,
		bar:            barrier.New(workers),
	}
	for i := 0; i < n; i++ {
		s.mind[i] = m.Weight(opts.Source, i)
	}
	s.connected.Set(uint(opts.Source))
	s.cells[0].reset()
	s.cells[1].reset()

	return s
}

// cell returns the reduction cell used in round r.
func (s *shared) cell(r int) *cell {
	return &s.cells[r%2]
}

// isConnected reports ConnectedSet membership of node i.
func (s *shared) isConnected(i int) bool {
	return s.connected.Test(uint(i))
}

// connect is the single-writer OBSERVE_CONNECT step for round r.
func (s *shared) connect(r int, md int64, mv int) error {
	s.rounds = r
	if mv == None {
		return nil
	}

	if s.opts.InvariantChecks {
		if err := s.checkBeforeConnect(r, md, mv); err != nil {
			return err
		}
	}

	s.connected.Set(uint(mv))
	s.connectedCount++
	s.lastMD = md

	if s.opts.InvariantChecks {
		if err := s.checkAfterConnect(r); err != nil {
			return err
		}
	}
	if s.opts.OnConnect != nil {
		s.opts.OnConnect(Event{Round: r, Worker: designated, Node: mv, Distance: md})
	}

	return nil
}

// checkBeforeConnect validates the reduced candidate of round r.
func (s *shared) checkBeforeConnect(r int, md int64, mv int) error {
	if mv < 0 || mv >= len(s.mind) {
		return fmt.Errorf("%w: round %d: vertex %d out of range", ErrInvariantViolation, r, mv)
	}
	if s.isConnected(mv) {
		return fmt.Errorf("%w: round %d: vertex %d already connected", ErrInvariantViolation, r, mv)
	}
	if s.mind[mv] != md {
		return fmt.Errorf("%w: round %d: md=%d but mind[%d]=%d", ErrInvariantViolation, r, md, mv, s.mind[mv])
	}
	// Non-negative weights connect nodes in non-decreasing distance order.
	if md < s.lastMD {
		return fmt.Errorf("%w: round %d: md=%d below previous %d", ErrInvariantViolation, r, md, s.lastMD)
	}

	return nil
}

// checkAfterConnect validates connected-set cardinality against elapsed rounds.
func (s *shared) checkAfterConnect(r int) error {
	count := int(s.connected.Count())
	if count != s.connectedCount || count > r+1 {
		return fmt.Errorf("%w: round %d: %d connected nodes (tracked %d)", ErrInvariantViolation, r, count, s.connectedCount)
	}

	return nil
}

// fail records the first worker failure and breaks the barrier so the rest
// of the team stops waiting.
func (s *shared) fail(err error) {
	s.failOnce.Do(func() { s.cause = err })
	s.bar.Break()
}
