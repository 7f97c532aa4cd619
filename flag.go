// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

import (
	"fmt"
	"time"

	"vawter.tech/stopflag/internal/state"
)

// A Flag is a one-way stop signal shared between an owner and its
// background work.
//
// The owner holds the Flag and calls [Flag.Set] to request a stop. The
// background work receives only the read-only waiter facades
// ([Flag.Sync] and [Flag.Async]) and reacts by polling or waiting; it
// cannot trigger the stop itself.
//
// A Flag is never reset: once set it stays set, the time of the first
// Set call is retained, and reasons only accumulate. All methods are
// safe for concurrent use from any goroutine.
type Flag struct {
	st *state.State[Reason]

	// The two facades are built once so that repeated accessor calls
	// hand out stable identities.
	syncWaiter  SyncWaiter
	asyncWaiter AsyncWaiter
}

// New returns a ready-to-use Flag.
func New() *Flag {
	f := &Flag{st: state.New[Reason]()}
	f.syncWaiter.f = f
	f.asyncWaiter.f = f
	return f
}

// Async returns the read-only waiter for select-style, context-aware
// callers. The same instance is returned on every call.
func (f *Flag) Async() *AsyncWaiter { return &f.asyncWaiter }

// IsSet reports whether the flag has been set. A non-empty filter
// additionally requires the stored reason to intersect the union of
// the filter values; an unset flag reports false regardless of filter.
func (f *Flag) IsSet(filter ...Reason) bool { return f.st.IsSet(filter...) }

// Reason returns the union of all reasons passed to [Flag.Set] so far.
func (f *Flag) Reason() Reason { return f.st.Reason() }

// Set requests a stop. The first call transitions the flag and wakes
// every current and future waiter, in both waiting styles, before
// returning. Every call, first or repeated, unions the given reasons
// into the stored value; a call without reasons keeps the stored value
// unchanged. Concurrent calls are safe.
func (f *Flag) Set(reasons ...Reason) { f.st.Set(reasons...) }

// Sync returns the read-only waiter for blocking callers. The same
// instance is returned on every call.
func (f *Flag) Sync() *SyncWaiter { return &f.syncWaiter }

// When returns the time of the first [Flag.Set] call, or false if the
// flag has not been set. The value never changes once assigned.
func (f *Flag) When() (time.Time, bool) { return f.st.When() }

// String is for debugging use only.
func (f *Flag) String() string {
	return fmt.Sprintf("stopflag.Flag set=%t reason=%s", f.IsSet(), f.Reason())
}
