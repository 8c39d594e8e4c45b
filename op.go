// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Async is the effect operation for awaiting one wrapped asynchronous call.
// It resumes with Either[error, T]: Right on success, Left on failure or
// cancellation. Construct with NewAsync; the zero value carries no call
// state and cannot be dispatched.
type Async[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	call  *Call[T]
	start Starter[T]
}

// NewAsync creates the effect operation for start. Each Async owns one
// single-use Call, so performing the same Async value twice trips the
// reuse precondition like any other adapter instance.
func NewAsync[T any](start Starter[T]) Async[T] {
	return Async[T]{call: NewCall[T](), start: start}
}

// Serial returns the invocation serial of the underlying call.
func (a Async[T]) Serial() Serial {
	return a.call.Serial()
}

// DispatchAwait drives the call under the scope's context.
// The first dispatch starts the wrapped operation; thereafter dispatch is
// non-blocking and returns iox.ErrWouldBlock while the outcome is pending.
func (a Async[T]) DispatchAwait(sc *scopeContext) (kont.Resumed, error) {
	if !a.call.started() {
		a.call.Start(sc.ctx, a.start)
	}
	v, err := a.call.Poll()
	if err == iox.ErrWouldBlock {
		return nil, err
	}
	if err != nil {
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error](v), nil
}
