// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Step evaluates an async protocol until the first await suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended await operation under the scope.
// DispatchAwait is non-blocking: it returns iox.ErrWouldBlock while the
// wrapped operation has not delivered its outcome (the completion boundary).
// The first Advance of an operation starts it.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next await or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the wrapped operation makes progress.
func Advance[R any](s *Scope, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	aop, ok := susp.Op().(awaitDispatcher)
	if !ok {
		panic("await: unhandled effect in Advance")
	}
	v, err := aop.DispatchAwait(&s.sc)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
