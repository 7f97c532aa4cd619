// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package wait

import (
	"context"

	"golang.org/x/time/rate"
)

// A RelayOption adjusts the behavior of [Relay].
type RelayOption func(*relayConfig)

type relayConfig struct {
	limiter *rate.Limiter
}

// WithRebroadcastLimit paces the relay's rebroadcasts with the given
// limiter, as protection against notification storms on the source.
// Notifications that arrive while the relay is paced coalesce into the
// next rebroadcast rather than being dropped; consumers already
// re-check their predicates, so coalescing is observationally the same
// as the relay's own loop boundary.
func WithRebroadcastLimit(l *rate.Limiter) RelayOption {
	return func(cfg *relayConfig) {
		cfg.limiter = l
	}
}

// Relay forwards notifications: every broadcast on source becomes a
// broadcast on target, waking all of target's waiters, without giving
// target's consumers any access to source.
//
// Relay runs until ctx is canceled and returns the cancellation cause;
// it has no other exit path. Run it as background work owned by
// whoever owns the two condition variables, e.g.:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(func() error { return wait.Relay(ctx, source, target) })
//
// The loop acquires locks in a fixed source-then-target order: it
// holds source.L across each iteration (releasing it only while
// suspended in source.Wait) and takes target.L just for the broadcast.
// Relaying is level-triggered across iteration boundaries, so target's
// consumers must re-check their own predicates after waking.
func Relay(ctx context.Context, source, target *Cond, opts ...RelayOption) error {
	var cfg relayConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	source.L.Lock()
	defer source.L.Unlock()
	for {
		if err := source.Wait(ctx); err != nil {
			return err
		}
		if cfg.limiter != nil {
			if err := cfg.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		target.L.Lock()
		target.Broadcast()
		target.L.Unlock()
	}
}
