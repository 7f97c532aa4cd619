// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package stopflag provides a one-way stop signal shared between an
// owner and its background work, with read-only waiters for both
// blocking and select-style callers.
//
// A [Flag] is a latch: once set it never reverts, the timestamp of the
// first [Flag.Set] call is retained, and the [Reason] bits passed to
// every Set call accumulate by union. The owner keeps the Flag to
// itself and hands out only the two waiter facades, so the work being
// stopped can observe the signal but never raise it.
//
// # Two waiting styles
//
// Background work falls into two camps that suspend in incompatible
// ways, and each gets its own facade over the same Flag.
//
// [SyncWaiter], from [Flag.Sync], simply blocks the calling goroutine.
// It suits worker loops without context plumbing:
//
//	stopped := flag.Sync()
//	for !stopped.IsSet() {
//		doWork()
//		stopped.Wait(time.Minute)
//	}
//
// [AsyncWaiter], from [Flag.Async], never blocks by itself. Its Wait
// returns a single-use [TimedWait] whose Await honors context
// cancellation:
//
//	stopped := flag.Async()
//	for !stopped.IsSet() {
//		if _, err := stopped.Wait(time.Minute).Await(ctx); err != nil {
//			return err
//		}
//	}
//
// Both styles share the call shape waiter.Wait(timeout), and a wait
// always resolves back to the long-lived waiter so the caller
// re-checks IsSet to distinguish a timeout from the signal. An elapsed
// timeout is a normal resolution; a context cancellation is always
// surfaced, never swallowed.
//
// # Reasons
//
// [Reason] is an extensible bit-set recording why the stop was
// requested. [Flag.IsSet] optionally filters on it:
//
//	flag.Set(stopflag.OwnerExiting)
//	flag.IsSet(stopflag.EntityRemoved | stopflag.OwnerExiting) // true
//
// # Integration
//
// [Harden] adapts a Flag into a plain [context.Context] for libraries
// that are not flag-aware, and [SetOnReceive] sets a Flag from any
// channel, typically one registered with [os/signal.Notify].
//
// The [wait] sub-package holds the related free utilities: an
// interruptible, timeout-bounded sleep ([wait.Sleep]), a cancellable
// broadcast condition variable ([wait.Cond]), and a relay that fans
// notifications from one condition variable to another ([wait.Relay]).
package stopflag
