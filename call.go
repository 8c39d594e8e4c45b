// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Completion delivers the outcome of a wrapped operation: an optional value
// and an optional error. Exactly one delivery is observed per invocation;
// later deliveries are discarded. A nil value with a nil error is a contract
// violation surfaced to the awaiter as ErrNoOutcome.
type Completion[T any] func(value *T, err error)

// Starter begins an asynchronous operation. It must invoke done exactly once
// from any goroutine, and synchronously returns the operation's cancellation
// handle.
type Starter[T any] func(done Completion[T]) Canceler

// Call resolution states. Resolving is a transient claim between winning
// the resolution race and publishing the outcome.
const (
	callIdle uint32 = iota
	callBusy
	callResolving
	callDone
)

// Call is a single-use adapter from one callback-based asynchronous
// operation to one awaitable outcome. An instance may be driven through
// Start at most once; reuse panics. First resolution wins: a completion
// landing after the call resolved canceled is discarded, never
// double-delivered.
//
// Start, Poll, and Await are driven from one goroutine. The completion
// callback and Cancel may arrive from any execution context.
type Call[T any] struct {
	state  atomix.Uint32
	slot   cancelSlot
	ctx    context.Context
	value  T
	err    error
	serial Serial
}

// NewCall creates an unstarted call adapter.
func NewCall[T any]() *Call[T] {
	return &Call[T]{serial: nextSerial()}
}

// Serial returns the invocation serial assigned to this call.
func (c *Call[T]) Serial() Serial {
	return c.serial
}

// Start begins the wrapped operation under ctx.
// If ctx is already canceled, or Cancel was called before Start, the
// operation is never invoked and the call resolves to ErrCanceled.
// Otherwise the returned cancellation handle is published into the guarded
// slot, where a racing cancellation request still takes effect exactly once.
//
// Starting a Call a second time is a programming error and panics.
func (c *Call[T]) Start(ctx context.Context, start Starter[T]) {
	if !c.state.CompareAndSwap(callIdle, callBusy) {
		panic("await: Call reused")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c.ctx = ctx
	if ctx.Err() != nil || c.slot.requested.Load() != 0 {
		c.resolveCanceled()
		return
	}
	c.slot.store(start(c.complete))
	// A cancellation landing between the request check and the handle
	// publication has had its Cancel delivered by store, but the operation
	// may never fire its callback after that; resolve here so the awaiter
	// is not left pending forever.
	if c.slot.requested.Load() != 0 {
		c.resolveCanceled()
	}
}

// Poll attempts to observe the outcome without blocking.
// Returns iox.ErrWouldBlock while the operation is still pending.
// A canceled context observed here resolves the call to ErrCanceled and
// propagates Cancel to the wrapped operation's handle at most once.
func (c *Call[T]) Poll() (T, error) {
	var zero T
	switch c.state.Load() {
	case callIdle:
		panic("await: Poll before Start")
	case callDone:
		return c.value, c.err
	}
	if c.ctx.Err() != nil {
		c.Cancel()
		// A completion may have won the race; either resolution is final.
		if c.state.Load() == callDone {
			return c.value, c.err
		}
	}
	return zero, iox.ErrWouldBlock
}

// Await blocks until the outcome is available, backing off adaptively on
// iox.ErrWouldBlock, without spawning goroutines or creating channels.
// Resumes from whatever execution context the completion fires on only by
// observing its published outcome.
func (c *Call[T]) Await() (T, error) {
	var bo iox.Backoff
	for {
		v, err := c.Poll()
		if err != iox.ErrWouldBlock {
			return v, err
		}
		bo.Wait()
	}
}

// Cancel requests cancellation of the in-flight operation and, if no
// completion won first, resolves the call to ErrCanceled. The underlying
// handle's Cancel is invoked at most once across all cancellation paths.
// Canceling a call that already resolved is a no-op. Canceling before
// Start records the request: Start then resolves to ErrCanceled without
// invoking the operation.
func (c *Call[T]) Cancel() {
	if c.state.Load() == callDone {
		return
	}
	c.slot.request()
	c.resolveCanceled()
}

// started reports whether Start has been driven.
func (c *Call[T]) started() bool {
	return c.state.Load() != callIdle
}

// resolveCanceled claims resolution for cancellation. Loses quietly to a
// concurrent completion.
func (c *Call[T]) resolveCanceled() {
	if !c.state.CompareAndSwap(callBusy, callResolving) {
		return
	}
	c.err = ErrCanceled
	c.state.Store(callDone)
}

// complete is the Completion handed to the wrapped operation. The first
// invocation claims resolution; duplicates and completions racing behind a
// cancellation are discarded.
func (c *Call[T]) complete(value *T, err error) {
	if !c.state.CompareAndSwap(callBusy, callResolving) {
		return
	}
	switch {
	case err != nil:
		c.err = &OpError{Cause: err}
	case value != nil:
		c.value = *value
	default:
		c.err = ErrNoOutcome
	}
	c.state.Store(callDone)
}

// Do wraps one callback-based operation and awaits its outcome under ctx.
// The adapter instance is internal to the invocation, so reuse is
// impossible by construction.
func Do[T any](ctx context.Context, start Starter[T]) (T, error) {
	c := NewCall[T]()
	c.Start(ctx, start)
	return c.Await()
}
