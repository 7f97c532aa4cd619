// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stopflag

// SetOnReceive sets the Flag, with the given reasons, when a value is
// received from the channel or the channel is closed. SetOnReceive can
// be used, for example, with [os/signal.Notify]. The helper goroutine
// exits once the flag has been set, whether by the channel or by any
// other caller.
func SetOnReceive[T any](f *Flag, ch <-chan T, reasons ...Reason) {
	go func() {
		select {
		case <-ch:
			f.Set(reasons...)
		case <-f.st.AsyncWake():
		}
	}()
}
