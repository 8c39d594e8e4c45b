// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "code.hybscloud.com/atomix"

// Canceler is the cancellation side of an in-flight asynchronous operation:
// the opaque handle a wrapped SDK call returns synchronously at start.
type Canceler interface {
	Cancel()
}

// CancelFunc adapts an ordinary function to Canceler.
type CancelFunc func()

// Cancel invokes f. A nil CancelFunc is a no-op handle, for operations
// that expose no way to abort.
func (f CancelFunc) Cancel() {
	if f != nil {
		f()
	}
}

// cancelSlot guards the (handle, cancel-requested) pair of one invocation.
// The handle lands from the starting goroutine while a cancellation request
// may arrive from any other execution context; the flag protocol delivers
// Cancel exactly once no matter which side wins the race.
type cancelSlot struct {
	handle    Canceler
	stored    atomix.Uint32
	requested atomix.Uint32
	issued    atomix.Uint32
}

// store publishes the handle returned by the wrapped operation.
// A cancellation requested before the handle landed takes effect here.
func (s *cancelSlot) store(h Canceler) {
	s.handle = h
	s.stored.Store(1)
	s.propagate()
}

// request records that cancellation was asked for. If the handle is already
// published the underlying Cancel fires here; otherwise store will fire it.
func (s *cancelSlot) request() {
	s.requested.Store(1)
	s.propagate()
}

// propagate invokes the handle's Cancel once both sides have published.
// The issued flag makes delivery at-most-once across racing callers.
func (s *cancelSlot) propagate() {
	if s.stored.Load() == 0 || s.requested.Load() == 0 {
		return
	}
	if !s.issued.CompareAndSwap(0, 1) {
		return
	}
	if s.handle != nil {
		s.handle.Cancel()
	}
}
