// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package wait provides interruptible waiting utilities: a cancellable
// broadcast condition variable, a relay that fans notifications from
// one condition variable to another, an interruptible bounded sleep,
// and a backoff delay generator to pair with it.
package wait

import (
	"context"
	"sync"
)

// A Cond is a condition variable with broadcast wakeups whose Wait can
// be interrupted by a context, unlike [sync.Cond].
//
// Like sync.Cond, a Cond is level-triggered: waiters must re-check
// their predicate after waking, because the wakeup only reports that a
// broadcast happened, not that the predicate still holds.
type Cond struct {
	// L is held while waiting and while changing the predicate.
	L sync.Locker

	// Each broadcast retires the current generation channel by closing
	// it and installs a fresh one, so waiters from before the
	// broadcast all wake and waiters from after it block on the new
	// generation.
	mu  sync.Mutex
	gen chan struct{}
}

// NewCond returns a new Cond with Locker l.
func NewCond(l sync.Locker) *Cond {
	return &Cond{L: l, gen: make(chan struct{})}
}

// Broadcast wakes every goroutine currently blocked in [Cond.Wait].
// Broadcasting with no waiters is a no-op. Unlike [sync.Cond], it is
// allowed but not required for the caller to hold c.L.
func (c *Cond) Broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	close(c.gen)
	c.gen = make(chan struct{})
}

// Wait atomically releases c.L and suspends the calling goroutine
// until [Cond.Broadcast] is called or ctx is canceled. It re-acquires
// c.L before returning, in both outcomes, so the caller can re-check
// its predicate under the lock. Cancellation is returned as the
// context's cause, never swallowed.
//
// Because L is released while waiting, the predicate may have changed
// again by the time Wait returns; callers typically loop:
//
//	c.L.Lock()
//	for !predicate() {
//		if err := c.Wait(ctx); err != nil {
//			c.L.Unlock()
//			return err
//		}
//	}
//	c.L.Unlock()
func (c *Cond) Wait(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	c.L.Unlock()
	defer c.L.Lock()
	select {
	case <-gen:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
