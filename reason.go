// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

import (
	"fmt"
	"strings"
)

// A Reason records why a stop was requested. Reasons are bit flags:
// combine them with the | operator and test membership with
// [Reason.Has]. A [Flag] accumulates every reason it is ever given and
// never clears one.
//
// The named values below cover the common lifecycle causes. Consumers
// may define additional bits starting at [NextReason].
type Reason uint32

const (
	// TaskFinished indicates the task exited on its own.
	TaskFinished Reason = 1 << iota
	// FilterMismatch indicates the watched entity no longer matches
	// the configured filters.
	FilterMismatch
	// EntityRemoved indicates the entity owning the task was removed.
	EntityRemoved
	// OwnerPausing indicates the owning process is pausing its work.
	OwnerPausing
	// OwnerExiting indicates the owning process is shutting down.
	OwnerExiting
	// Signalled indicates an explicit stop request.
	Signalled
	// TaskCancelled indicates the task's context was canceled while
	// its work may still be running.
	TaskCancelled
	// TaskAbandoned indicates the owner gave up waiting for the task.
	TaskAbandoned

	// NextReason is the first bit available for consumer-defined
	// reasons.
	NextReason
)

var reasonNames = map[Reason]string{
	TaskFinished:   "TaskFinished",
	FilterMismatch: "FilterMismatch",
	EntityRemoved:  "EntityRemoved",
	OwnerPausing:   "OwnerPausing",
	OwnerExiting:   "OwnerExiting",
	Signalled:      "Signalled",
	TaskCancelled:  "TaskCancelled",
	TaskAbandoned:  "TaskAbandoned",
}

// Has reports whether any bit of the argument is present in r.
func (r Reason) Has(other Reason) bool { return r&other != 0 }

// String is for debugging use only.
func (r Reason) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for bit := Reason(1); bit != 0 && bit <= r; bit <<= 1 {
		if r&bit == 0 {
			continue
		}
		if name, ok := reasonNames[bit]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("0x%x", uint32(bit)))
		}
	}
	return strings.Join(parts, "|")
}
