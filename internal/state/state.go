// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package state defines the shared core of a stop flag.
package state

import (
	"sync"
	"time"
)

// A State is the mutable half of a stop flag. It is shared between the
// flag's setter facade and its read-only waiters. The type parameter is
// the caller's reason bitmask.
//
// A State holds one wake channel per waiting style. Both channels are
// closed, under the mutex, before Set returns, so a waiter in either
// style observes the transition within one scheduling quantum of the
// other.
type State[R ~uint32] struct {
	syncWake  chan struct{} // Closed on the first Set; consumed by blocking waits.
	asyncWake chan struct{} // Closed on the first Set; consumed by select-based waits.

	mu struct {
		sync.RWMutex
		set    bool      // Invariant: monotonic, never reverts.
		reason R         // Invariant: grows by union only.
		when   time.Time // Invariant: assigned once, on the transition.
	}
}

func New[R ~uint32]() *State[R] {
	return &State[R]{
		syncWake:  make(chan struct{}),
		asyncWake: make(chan struct{}),
	}
}

// AsyncWake returns the channel consumed by select-based waits.
func (s *State[R]) AsyncWake() <-chan struct{} { return s.asyncWake }

// IsSet reports whether the flag has been set. A non-empty filter
// additionally requires the stored reason to intersect the union of the
// filter values.
func (s *State[R]) IsSet(filter ...R) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.mu.set {
		return false
	}
	if len(filter) == 0 {
		return true
	}
	var union R
	for _, r := range filter {
		union |= r
	}
	return s.mu.reason&union != 0
}

// Reason returns the union of all reasons passed to Set so far.
func (s *State[R]) Reason() R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.reason
}

// Set transitions the State on the first call and records reasons on
// every call. Repeated and concurrent calls are safe; the reasons
// accumulate and never reset.
func (s *State[R]) Set(reasons ...R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reasons {
		s.mu.reason |= r
	}
	if s.mu.set {
		return
	}
	s.mu.set = true
	s.mu.when = time.Now()
	close(s.syncWake)
	close(s.asyncWake)
}

// SyncWake returns the channel consumed by blocking waits.
func (s *State[R]) SyncWake() <-chan struct{} { return s.syncWake }

// When returns the time of the first Set call, or false if the State
// has not been set.
func (s *State[R]) When() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mu.when, s.mu.set
}
