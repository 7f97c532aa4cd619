// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrReused is the panic value when a [TimedWait] is awaited more than
// once.
var ErrReused = errors.New(
	"stopflag: a TimedWait is single-use; call AsyncWaiter.Wait again for a fresh one")

// A TimedWait is an ephemeral, single-use awaitable created by
// [AsyncWaiter.Wait]. It binds one timeout to one flag for the duration
// of a single suspension and must not be stored or reused; awaiting it
// a second time panics with [ErrReused].
//
// Resolving a TimedWait always yields the original long-lived
// [AsyncWaiter], never the TimedWait itself, so the ephemeral instance
// cannot leak into long-lived state.
type TimedWait struct {
	w       *AsyncWaiter
	timeout time.Duration
	bounded bool
	used    atomic.Bool
}

// Await suspends the calling goroutine until the flag is set, the
// bound timeout elapses, or ctx is canceled, whichever comes first.
// Only the calling goroutine is suspended.
//
// An elapsed timeout is not an error: Await returns the original
// waiter with a nil error, and the caller distinguishes timeout from
// signal by re-checking IsSet. Cancellation is never swallowed; it is
// returned as the context's cause.
func (t *TimedWait) Await(ctx context.Context) (*AsyncWaiter, error) {
	if t.used.Swap(true) {
		panic(ErrReused)
	}
	if t.w.IsSet() {
		return t.w, nil
	}
	var timeC <-chan time.Time
	if t.bounded {
		if t.timeout <= 0 {
			// Nothing to wait for; behave as an already-elapsed timeout.
			return t.w, nil
		}
		timer := time.NewTimer(t.timeout)
		defer timer.Stop()
		timeC = timer.C
	}
	select {
	case <-t.w.f.st.AsyncWake():
	case <-timeC:
	case <-ctx.Done():
		return t.w, context.Cause(ctx)
	}
	return t.w, nil
}

// IsSet implements [Waiter].
func (t *TimedWait) IsSet() bool { return t.w.IsSet() }

// Reason implements [Waiter].
func (t *TimedWait) Reason() Reason { return t.w.Reason() }

// String is for debugging use only.
func (t *TimedWait) String() string {
	return fmt.Sprintf("stopflag.TimedWait bounded=%t set=%t", t.bounded, t.IsSet())
}
