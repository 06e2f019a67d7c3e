// SPDX-License-Identifier: MIT

package parallel

import (
	"log/slog"

	"github.com/katalvlaran/teampath/matrix"
	"github.com/katalvlaran/teampath/partition"
)

// worker is one member of the fixed team. It owns the nodes of rng.
type worker struct {
	id  int
	rng partition.Range
	s   *shared
	log *slog.Logger
}

// run executes every round of the protocol in lockstep with the team:
//
//	SCANNING → REPORTING → barrier-1 → OBSERVE_CONNECT → barrier-2 → UPDATING → barrier-3
//
// It returns barrier.ErrBroken if another worker failed, or the error of the
// designated worker's connect step.
func (w *worker) run() error {
	s := w.s
	n := s.m.Size()
	w.log.Debug("worker start", "first", w.rng.Start, "last", w.rng.End)

	for r := 1; r < n; r++ {
		c := s.cell(r)

		// SCANNING + REPORTING.
		d, v := findNearest(w.rng, s.mind, s.isConnected)
		c.report(d, v)
		if err := s.bar.Wait(); err != nil {
			return err
		}

		// After barrier-1 the cell holds the global minimum for this round.
		md, mv := c.md, c.mv
		if mv == None && s.opts.EarlyExit {
			if w.id == designated {
				s.rounds = r
				w.log.Debug("no reachable unconnected node, leaving early", "round", r)
			}
			return nil
		}

		// OBSERVE_CONNECT.
		if w.id == designated {
			if err := s.connect(r, md, mv); err != nil {
				return err
			}
			s.cell(r + 1).reset()
			if mv != None {
				w.log.Debug("connect", "round", r, "node", mv, "distance", md)
			}
		}
		if err := s.bar.Wait(); err != nil {
			return err
		}

		// UPDATING.
		if mv != None {
			updateMind(w.rng, mv, s.m, s.mind, s.isConnected)
		}
		if err := s.bar.Wait(); err != nil {
			return err
		}
	}

	w.log.Debug("worker exit")

	return nil
}

// findNearest scans rng for the unconnected node with the smallest finite
// mind value. Ties go to the lowest index. It returns (matrix.Inf, None) if
// the range holds no such node.
func findNearest(rng partition.Range, mind []int64, connected func(int) bool) (int64, int) {
	d, v := matrix.Inf, None
	for i := rng.Start; i <= rng.End; i++ {
		if !connected(i) && mind[i] < d {
			d = mind[i]
			v = i
		}
	}

	return d, v
}

// updateMind relaxes every unconnected node of rng through the newly
// connected node mv:
//
//	mind[i] = min(mind[i], mind[mv] + weight(mv, i))
//
// Only finite edges are considered; the sum saturates at matrix.Inf.
func updateMind(rng partition.Range, mv int, m *matrix.Distance, mind []int64, connected func(int) bool) {
	base := mind[mv]
	var w, cand int64
	for i := rng.Start; i <= rng.End; i++ {
		if connected(i) {
			continue
		}
		w = m.Weight(mv, i)
		if w == matrix.Inf {
			continue
		}
		cand = matrix.SaturatingAdd(base, w)
		if cand < mind[i] {
			mind[i] = cand
		}
	}
}
