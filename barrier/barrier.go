// SPDX-License-Identifier: MIT

// Package barrier provides a reusable (cyclic) rendezvous point for a fixed
// set of goroutines.
//
// Every party calls Wait; no caller returns until all parties of the current
// generation have arrived, at which point the barrier resets itself for the
// next generation. A barrier can be broken: Break wakes every waiter, current
// and future, with ErrBroken so a team never hangs on a member that has
// already failed. A party that simply never arrives still blocks the others
// forever; there is no timeout.
package barrier

import (
	"errors"
	"sync"
)

// ErrBroken is returned by Wait once the barrier has been broken.
var ErrBroken = errors.New("barrier: broken")

// Barrier is a cyclic barrier for a fixed number of parties.
// The zero value is not usable; construct with New.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int    // fixed team size
	waiting    int    // arrivals in the current generation
	generation uint64 // bumped each time the barrier trips
	broken     bool
}

// New returns a barrier for the given number of parties.
// It panics if parties <= 0 (programmer error).
func New(parties int) *Barrier {
	if parties <= 0 {
		panic("barrier: parties must be > 0")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Parties returns the team size.
func (b *Barrier) Parties() int { return b.parties }

// Generation returns how many times the barrier has tripped.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.generation
}

// Wait blocks until all parties have called Wait for the current generation.
// Everything a party did before Wait happens-before everything any party does
// after the same generation's Wait returns.
func (b *Barrier) Wait() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken {
		return ErrBroken
	}

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		// Last arrival trips the barrier and opens the next generation.
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()

		return nil
	}

	for gen == b.generation && !b.broken {
		b.cond.Wait()
	}
	if gen == b.generation {
		return ErrBroken
	}

	return nil
}

// Break marks the barrier broken and wakes every waiter. Idempotent.
func (b *Barrier) Break() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.broken = true
	b.cond.Broadcast()
}

// Broken reports whether Break has been called.
func (b *Barrier) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.broken
}
