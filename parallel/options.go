// SPDX-License-Identifier: MIT

package parallel

import (
	"log/slog"

	"github.com/katalvlaran/teampath/partition"
)

// Event describes one connect step: in Round, the designated worker added
// Node (at Distance from the source) to the connected set.
type Event struct {
	Round    int
	Worker   int
	Node     int
	Distance int64
}

// Options configures Run. The worker count is not an option: it is an
// explicit argument of Run.
type Options struct {
	Source          int                                 // source node, default 0
	Logger          *slog.Logger                        // default discards
	OnConnect       func(Event)                         // called by the designated worker after each connect
	OnPlan          func(worker int, r partition.Range) // called in worker order before the team starts
	InvariantChecks bool                                // verify internal invariants every round
	EarlyExit       bool                                // leave once no unconnected node is reachable
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// Source sets the source node.
func Source(i int) Option {
	return func(o *Options) { o.Source = i }
}

// WithLogger routes debug and info records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnConnect registers a hook fired once per round that connects a node.
// The hook runs on the designated worker between two barriers, so every
// other worker waits for it to return; it must not call back into Run.
func WithOnConnect(fn func(Event)) Option {
	return func(o *Options) { o.OnConnect = fn }
}

// WithOnPlan registers a hook that receives each worker's node range, in
// worker order, before the team is spawned.
func WithOnPlan(fn func(worker int, r partition.Range)) Option {
	return func(o *Options) { o.OnPlan = fn }
}

// WithInvariantChecks enables per-round consistency checks. A violation
// stops the team and Run returns an error wrapping ErrInvariantViolation.
func WithInvariantChecks() Option {
	return func(o *Options) { o.InvariantChecks = true }
}

// WithEarlyExit lets the team stop after the first round in which no
// unconnected node has a finite distance, instead of always running n−1
// rounds. Distances are identical; Result.Rounds reports fewer rounds.
// This changes timing relative to the fixed-round protocol.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// defaultOptions returns the zero-configuration options.
func defaultOptions() Options {
	return Options{
		Source: 0,
		Logger: slog.New(slog.DiscardHandler),
	}
}
