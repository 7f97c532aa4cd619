// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag_test

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"vawter.tech/stopflag"
)

func Example() {
	flag := stopflag.New()

	// A blocking worker polls between bounded sleeps.
	go func(stopped *stopflag.SyncWaiter) {
		for !stopped.IsSet() {
			// ... do work ...
			stopped.Wait(time.Minute)
		}
	}(flag.Sync())

	// A context-aware worker awaits the same signal.
	go func(stopped *stopflag.AsyncWaiter) {
		ctx := context.Background()
		for !stopped.IsSet() {
			// ... do work ...
			if _, err := stopped.Wait(time.Minute).Await(ctx); err != nil {
				return // canceled externally
			}
		}
	}(flag.Async())

	// The owner, and only the owner, requests the stop.
	flag.Set(stopflag.OwnerExiting)

	fmt.Println(flag.IsSet(stopflag.OwnerExiting))
	// Output: true
}

func ExampleSetOnReceive() {
	flag := stopflag.New()

	// Stop all workers on SIGINT.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	stopflag.SetOnReceive(flag, signals, stopflag.Signalled)

	// Workers notice via their waiters.
	worker := flag.Sync()
	if worker.Wait(10 * time.Millisecond).IsSet() {
		// ... drain and exit ...
		_ = worker.Reason().Has(stopflag.Signalled)
	}
}

func ExampleHarden() {
	flag := stopflag.New()

	// Libraries that only understand context.Context still observe
	// the stop signal.
	ctx := stopflag.Harden(context.Background(), flag)

	flag.Set(stopflag.OwnerExiting)
	<-ctx.Done()
	fmt.Println(ctx.Err() != nil)
	// Output: true
}
