// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

import (
	"fmt"
	"time"
)

// Waiter is the read-only capability shared by every waiter variant.
// It is the type to accept in APIs that only need to observe the stop
// signal, without caring which waiting style the caller uses.
//
// The Wait operation is deliberately absent from this interface: its
// return type differs per variant ([SyncWaiter.Wait] blocks and returns
// the waiter, [AsyncWaiter.Wait] returns a single-use [TimedWait]), so
// each variant declares it with a precise type.
type Waiter interface {
	// IsSet reports whether the underlying flag has been set.
	IsSet() bool
	// Reason returns the accumulated stop reasons.
	Reason() Reason
}

var (
	_ Waiter = (*SyncWaiter)(nil)
	_ Waiter = (*AsyncWaiter)(nil)
	_ Waiter = (*TimedWait)(nil)
)

// A SyncWaiter observes a [Flag] by blocking the calling goroutine.
// It is handed to background work that has no context plumbing and
// simply sleeps between polls:
//
//	stopped := flag.Sync()
//	for !stopped.IsSet() {
//		doWork()
//		stopped.Wait(time.Minute)
//	}
//
// Obtain instances from [Flag.Sync] only.
type SyncWaiter struct {
	f *Flag
}

// IsSet implements [Waiter].
func (w *SyncWaiter) IsSet() bool { return w.f.IsSet() }

// Reason implements [Waiter].
func (w *SyncWaiter) Reason() Reason { return w.f.Reason() }

// Wait blocks the calling goroutine until the flag is set or the
// timeout elapses, whichever comes first. Without a timeout argument it
// blocks until the flag is set, however long that takes. Only the
// calling goroutine is suspended.
//
// Wait returns the receiver so that a timeout is indistinguishable from
// a wake until the caller re-checks IsSet; this keeps poll loops to a
// single call shape.
func (w *SyncWaiter) Wait(timeout ...time.Duration) *SyncWaiter {
	wake := w.f.st.SyncWake()
	if len(timeout) == 0 {
		<-wake
		return w
	}
	d := timeout[0]
	if d <= 0 {
		// An explicit non-positive timeout is a poll.
		return w
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-wake:
	case <-timer.C:
	}
	return w
}

// String is for debugging use only.
func (w *SyncWaiter) String() string {
	return fmt.Sprintf("stopflag.SyncWaiter set=%t reason=%s", w.IsSet(), w.Reason())
}

// An AsyncWaiter observes a [Flag] from select-style, context-aware
// code. The waiter itself never suspends the caller and exposes no
// channel; to wait, call [AsyncWaiter.Wait] for a single-use
// [TimedWait] and await that:
//
//	stopped := flag.Async()
//	for !stopped.IsSet() {
//		if _, err := stopped.Wait(time.Minute).Await(ctx); err != nil {
//			return err // canceled
//		}
//	}
//
// Obtain instances from [Flag.Async] only.
type AsyncWaiter struct {
	f *Flag
}

// IsSet implements [Waiter].
func (w *AsyncWaiter) IsSet() bool { return w.f.IsSet() }

// Reason implements [Waiter].
func (w *AsyncWaiter) Reason() Reason { return w.f.Reason() }

// Wait returns a fresh, single-use [TimedWait] bound to the given
// timeout. Without a timeout argument the wait is unbounded. Wait does
// not itself suspend the caller.
func (w *AsyncWaiter) Wait(timeout ...time.Duration) *TimedWait {
	t := &TimedWait{w: w}
	if len(timeout) > 0 {
		t.timeout = timeout[0]
		t.bounded = true
	}
	return t
}

// String is for debugging use only.
func (w *AsyncWaiter) String() string {
	return fmt.Sprintf("stopflag.AsyncWaiter set=%t reason=%s", w.IsSet(), w.Reason())
}
