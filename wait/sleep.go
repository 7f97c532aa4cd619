// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package wait

import (
	"context"
	"time"
)

// Unbounded is a delay entry that imposes no bound. [Sleep] ignores it
// when choosing the shortest delay; any negative duration behaves the
// same way.
const Unbounded time.Duration = -1

// Sleep suspends the calling goroutine for the shortest of the given
// delays, returning early if the wakeup channel fires or ctx is
// canceled. Only the calling goroutine is suspended.
//
// [Unbounded] (negative) entries are ignored. If no delay remains, or
// the shortest is zero, Sleep returns (0, nil) immediately without
// suspending at all. Elapsed time is measured with the monotonic clock
// ([time.Since]), so wall-clock adjustments cannot skew the result.
//
// The return value is the unused remainder: 0 means the sleep ran its
// full course, while a positive value means the wakeup fired first and
// the caller should re-evaluate and possibly sleep again for the
// remainder. A nil wakeup channel never fires, making Sleep a plain
// bounded sleep. Cancellation is returned as the context's cause,
// never swallowed.
func Sleep(
	ctx context.Context, wakeup <-chan struct{}, delays ...time.Duration,
) (remaining time.Duration, err error) {
	bound := time.Duration(0)
	bounded := false
	for _, d := range delays {
		if d < 0 {
			continue
		}
		if !bounded || d < bound {
			bound = d
			bounded = true
		}
	}

	// Do not go for a real suspension if there is no need to sleep.
	if !bounded || bound <= 0 {
		return 0, nil
	}

	timer := time.NewTimer(bound)
	defer timer.Stop()
	start := time.Now()
	select {
	case <-timer.C:
		// The sleep is over: uninterrupted.
		return 0, nil
	case <-wakeup:
		return max(0, bound-time.Since(start)), nil
	case <-ctx.Done():
		return 0, context.Cause(ctx)
	}
}
