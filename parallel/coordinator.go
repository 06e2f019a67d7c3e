// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/teampath/barrier"
	"github.com/katalvlaran/teampath/matrix"
	"github.com/katalvlaran/teampath/partition"
)

// Run computes shortest distances from the source node (default 0) to every
// node of m using a fixed team of workers goroutines.
//
// The team is spawned once. Each of the n−1 rounds runs the worker protocol
// with three barriers and one critical section; the round structure is kept
// even after every reachable node is connected, unless WithEarlyExit is set.
//
// Validation (before any goroutine starts):
//  1. m must be non-nil (ErrNilMatrix).
//  2. workers must be > 0 (ErrBadWorkers).
//  3. the source must be in [0,n) (ErrBadSource).
//
// All three wrap ErrConfiguration. There is no timeout: a worker that never
// reaches a barrier blocks the team forever. A worker that fails (panic or
// invariant violation) breaks the barrier and Run returns its error.
//
// Complexity: O(n^2 / workers) work per worker plus 3(n−1) barrier trips.
func Run(m *matrix.Distance, workers int, opts ...Option) (*Result, error) {
	// 1) Build and validate options.
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultOptions().Logger
	}

	if m == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNilMatrix)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrBadWorkers, workers)
	}
	n := m.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %w: %d not in [0,%d)", ErrConfiguration, ErrBadSource, cfg.Source, n)
	}

	// 2) Plan the node ranges; n > 0 and workers > 0 hold here.
	ranges, err := partition.Plan(n, workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if cfg.OnPlan != nil {
		for k, r := range ranges {
			cfg.OnPlan(k, r)
		}
	}

	// 3) Shared state and team.
	s := newShared(m, workers, cfg)
	log := cfg.Logger.With("nodes", n, "workers", workers, "source", cfg.Source)
	log.Debug("team starting")

	start := time.Now()
	var g errgroup.Group
	for k, r := range ranges {
		w := &worker{id: k, rng: r, s: s, log: cfg.Logger.With("worker", k)}
		g.Go(func() error { return w.guard() })
	}
	waitErr := g.Wait()
	elapsed := time.Since(start)

	// 4) Prefer the recorded root cause over the barrier errors it triggered.
	if s.cause != nil {
		log.Error("team failed", "error", s.cause)
		return nil, s.cause
	}
	if waitErr != nil {
		return nil, waitErr
	}

	if cfg.InvariantChecks {
		if err = s.checkFinal(); err != nil {
			return nil, err
		}
	}

	res := newResult(s, workers, elapsed)
	log.Info("run complete", "rounds", res.Rounds(), "connected", res.Connected(), "elapsed", elapsed)

	return res, nil
}

// guard runs the worker, turning a panic or an error into a team failure.
func (w *worker) guard() error {
	var err error
	if rec := panics.Try(func() { err = w.run() }); rec != nil {
		err = fmt.Errorf("%w: worker %d: %w", ErrWorkerPanic, w.id, rec.AsError())
	}
	if err == nil {
		return nil
	}
	if !errors.Is(err, barrier.ErrBroken) {
		// Root cause: record it and release the rest of the team.
		w.s.fail(err)
	}

	return err
}

// checkFinal validates the end-of-run state.
func (s *shared) checkFinal() error {
	if s.mind[s.opts.Source] != 0 {
		return fmt.Errorf("%w: source distance %d, want 0", ErrInvariantViolation, s.mind[s.opts.Source])
	}
	if s.connectedCount > s.rounds+1 {
		return fmt.Errorf("%w: %d connected after %d rounds", ErrInvariantViolation, s.connectedCount, s.rounds)
	}

	return nil
}
