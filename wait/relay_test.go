// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package wait

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// startRelay runs Relay in the background and returns a function that
// both cancels it and verifies the cancellation propagated.
func startRelay(
	t *testing.T, source, target *Cond, opts ...RelayOption,
) (stop func()) {
	t.Helper()
	r := require.New(t)

	cause := errors.New("relay scope canceled")
	ctx, cancel := context.WithCancelCause(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Relay(ctx, source, target, opts...)
	}()
	// Give the relay a moment to park in source.Wait.
	time.Sleep(10 * time.Millisecond)

	return func() {
		cancel(cause)
		select {
		case err := <-done:
			// The relay must surface its cancellation, not absorb it.
			r.ErrorIs(err, cause)
		case <-time.After(time.Second):
			r.Fail("relay did not exit on cancellation")
		}
	}
}

func TestRelayBroadcasts(t *testing.T) {
	r := require.New(t)

	source := NewCond(&sync.Mutex{})
	target := NewCond(&sync.Mutex{})
	stop := startRelay(t, source, target)
	defer stop()

	const waiters = 4
	var started sync.WaitGroup
	g, ctx := errgroup.WithContext(t.Context())
	for range waiters {
		started.Add(1)
		g.Go(func() error {
			target.L.Lock()
			defer target.L.Unlock()
			started.Done()
			return target.Wait(ctx)
		})
	}
	started.Wait()
	time.Sleep(10 * time.Millisecond)

	// One notify on source becomes a broadcast on target.
	source.Broadcast()

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		r.NoError(err)
	case <-time.After(time.Second):
		r.Fail("relay did not wake every target waiter")
	}
}

func TestRelayNoTargetWaiters(t *testing.T) {
	source := NewCond(&sync.Mutex{})
	target := NewCond(&sync.Mutex{})
	stop := startRelay(t, source, target)
	defer stop()

	// Notifying with nobody on the target side must be harmless.
	source.Broadcast()
	time.Sleep(10 * time.Millisecond)
}

func TestRelayRepeats(t *testing.T) {
	r := require.New(t)

	source := NewCond(&sync.Mutex{})
	target := NewCond(&sync.Mutex{})
	stop := startRelay(t, source, target)
	defer stop()

	// The relay is a loop, not a one-shot: each notify is forwarded.
	for range 3 {
		done := make(chan error, 1)
		go func() {
			target.L.Lock()
			defer target.L.Unlock()
			done <- target.Wait(t.Context())
		}()
		time.Sleep(10 * time.Millisecond)

		source.Broadcast()
		select {
		case err := <-done:
			r.NoError(err)
		case <-time.After(time.Second):
			r.Fail("relay stopped forwarding")
		}
	}
}

func TestRelayRebroadcastLimit(t *testing.T) {
	r := require.New(t)

	source := NewCond(&sync.Mutex{})
	target := NewCond(&sync.Mutex{})
	// A generous burst keeps the pacing from stalling the test; the
	// option only needs to be exercised, not timed.
	stop := startRelay(t, source, target,
		WithRebroadcastLimit(rate.NewLimiter(rate.Every(time.Millisecond), 1)))
	defer stop()

	done := make(chan error, 1)
	go func() {
		target.L.Lock()
		defer target.L.Unlock()
		done <- target.Wait(t.Context())
	}()
	time.Sleep(10 * time.Millisecond)

	source.Broadcast()
	select {
	case err := <-done:
		r.NoError(err)
	case <-time.After(time.Second):
		r.Fail("paced relay did not forward the notify")
	}
}
