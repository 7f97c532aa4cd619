// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package wait

import (
	"math/rand/v2"
	"time"
)

// Backoff computes an exponential backoff with jitter. It pairs with
// [Sleep] for retry loops that must remain interruptible by a stop
// signal:
//
//	b := &wait.Backoff{MaxDelay: 30 * time.Second}
//	for attempt := 0; ; attempt++ {
//		if err := try(); err == nil {
//			return nil
//		}
//		left, err := wait.Sleep(ctx, wakeup, b.Delay(attempt))
//		if err != nil {
//			return err
//		}
//		if left > 0 {
//			return nil // woken early; stop retrying
//		}
//	}
type Backoff struct {
	Jitter     time.Duration // Delays are adjusted ±50% of this value. Default is 0.
	MaxDelay   time.Duration // Defaults to 1s if unset.
	MinDelay   time.Duration // Defaults to 10ms if unset.
	Multiplier float32       // Defaults to 10.0 if unset.
}

// Delay returns the delay to apply after the given number of completed
// attempts. Attempt 0 yields MinDelay; each further attempt multiplies
// the delay, clamped to MaxDelay, with jitter applied last.
func (b *Backoff) Delay(attempt int) time.Duration {
	b = b.sanitize() // Shadowing receiver.

	delay := b.MinDelay
	for range attempt {
		delay = time.Duration(float32(delay) * b.Multiplier)
		if delay >= b.MaxDelay {
			delay = b.MaxDelay
			break
		}
	}
	jitter := time.Duration((rand.Float32() - 0.5) * float32(b.Jitter))
	return max(0, delay+jitter)
}

// sanitize returns a copy with all fields initialized to a reasonable default.
func (b *Backoff) sanitize() *Backoff {
	ret := *b
	// Jitter defaults to 0.
	if ret.MaxDelay == 0 {
		ret.MaxDelay = 1 * time.Second
	}
	if ret.MinDelay == 0 {
		ret.MinDelay = 10 * time.Millisecond
	}
	if ret.Multiplier == 0 {
		ret.Multiplier = 10
	}
	return &ret
}
