// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is reported by a hardened context once its [Flag] has been
// set.
var ErrStopped = errors.New("stopped")

var errCanceledStopped = errors.Join(context.Canceled, ErrStopped)

// Harden adapts a [Flag] into a [context.Context]. This can be used
// whenever it is necessary to call APIs that are not flag-aware (e.g.
// database drivers or RPC clients) but should still be interrupted by
// the stop signal.
//
// The returned context has the following behaviors:
//   - The Done channel closes when the flag is set.
//   - Err returns an error that is both [context.Canceled] and
//     [ErrStopped] once the flag has been set. Otherwise, it returns
//     the parent's Err.
//   - Deadline and Value delegate to the parent.
//
// The Done channel tracks only the flag. Callers that also need the
// parent's cancellation should select over both contexts or derive the
// flag's Set call from the parent in the first place.
func Harden(ctx context.Context, f *Flag) context.Context {
	return &hardened{parent: ctx, f: f}
}

// hardened just swizzles the method set.
type hardened struct {
	parent context.Context
	f      *Flag
}

var _ context.Context = (*hardened)(nil)

func (h *hardened) Deadline() (deadline time.Time, ok bool) {
	return h.parent.Deadline()
}

func (h *hardened) Done() <-chan struct{} {
	return h.f.st.AsyncWake()
}

func (h *hardened) Err() error {
	if h.f.IsSet() {
		return errCanceledStopped
	}
	return h.parent.Err()
}

func (h *hardened) Value(key any) any {
	return h.parent.Value(key)
}
