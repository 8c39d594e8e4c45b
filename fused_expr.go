// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value, consistent
// with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func asyncBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(kont.Either[error, T]) kont.Expr[B])
	result := f(current.(kont.Either[error, T]))
	return kont.Erased(result.Value), result.Frame
}

// ExprAsyncBind awaits the wrapped operation and passes its outcome to f.
// Fuses ExprPerform(NewAsync(start)) + ExprBind.
func ExprAsyncBind[T, B any](start Starter[T], f func(kont.Either[error, T]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = asyncBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = NewAsync(start)
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func tryAsyncBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	e := current.(kont.Either[error, T])
	if cause, ok := e.GetLeft(); ok {
		thrown := kont.ExprThrowError[error, B](cause)
		return kont.Erased(thrown.Value), thrown.Frame
	}
	v, _ := e.GetRight()
	result := f(v)
	return kont.Erased(result.Value), result.Frame
}

// ExprTryAsyncBind awaits the wrapped operation and passes the success
// value to f. Failure and cancellation short-circuit via the error effect;
// evaluate with ExecErrorExpr, RunErrorExpr, or StepError.
// Fuses ExprPerform(NewAsync(start)) + ExprBind + Either branch.
func ExprTryAsyncBind[T, B any](start Starter[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = tryAsyncBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = NewAsync(start)
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
