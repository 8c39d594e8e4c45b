// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"errors"

	"code.hybscloud.com/kont"
)

// Loop runs a recursive async protocol (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// Retry re-runs a wrapped operation until it succeeds or attempts are
// exhausted. The adapter layer itself never retries; Retry is the
// caller-side policy combinator, built on Loop. start is invoked once per
// attempt so every attempt gets a fresh single-use adapter. An attempts
// value below one behaves as a single attempt: the operation always runs
// at least once.
//
// Cancellation is not retried: a canceled attempt resolves the whole Retry
// with Left(ErrCanceled) immediately.
func Retry[T any](attempts int, start func() Starter[T]) kont.Eff[kont.Either[error, T]] {
	return Loop(attempts, func(left int) kont.Eff[kont.Either[int, kont.Either[error, T]]] {
		return AsyncBind(start(), func(e kont.Either[error, T]) kont.Eff[kont.Either[int, kont.Either[error, T]]] {
			if cause, ok := e.GetLeft(); ok && left > 1 && !errors.Is(cause, ErrCanceled) {
				return kont.Pure(kont.Left[int, kont.Either[error, T]](left - 1))
			}
			return kont.Pure(kont.Right[int](e))
		})
	})
}
