// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// AsyncBind awaits the wrapped operation and passes its outcome to f.
// Fuses Perform(NewAsync(start)) + Bind.
func AsyncBind[T, B any](start Starter[T], f func(kont.Either[error, T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(NewAsync(start)), f)
}

// TryAsyncBind awaits the wrapped operation and passes the success value to
// f. Failure and cancellation short-circuit via the error effect; evaluate
// with ExecError, RunError, or StepError.
// Fuses Perform(NewAsync(start)) + Bind + Either branch.
func TryAsyncBind[T, B any](start Starter[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return AsyncBind(start, func(e kont.Either[error, T]) kont.Eff[B] {
		if cause, ok := e.GetLeft(); ok {
			return kont.ThrowError[error, B](cause)
		}
		v, _ := e.GetRight()
		return f(v)
	})
}

// UnitThen awaits an operation whose callback reports only an optional
// error, then continues with next. A reported error or cancellation
// short-circuits via the error effect.
func UnitThen[B any](start func(done func(err error)) Canceler, next kont.Eff[B]) kont.Eff[B] {
	return TryAsyncBind(unitStarter(start), func(struct{}) kont.Eff[B] {
		return next
	})
}

// ValueBind awaits a best-effort operation whose callback cannot fail and
// passes its value to f. Only cancellation can short-circuit.
func ValueBind[T, B any](start func(done func(v T)) Canceler, f func(T) kont.Eff[B]) kont.Eff[B] {
	return TryAsyncBind(valueStarter(start), f)
}

// EitherBind awaits a two-slot operation and passes the populated slot to f.
// An error or an all-empty callback short-circuits via the error effect.
func EitherBind[L, R, B any](start func(done func(l *L, r *R, err error)) Canceler, f func(kont.Either[L, R]) kont.Eff[B]) kont.Eff[B] {
	return TryAsyncBind(eitherStarter(start), f)
}
