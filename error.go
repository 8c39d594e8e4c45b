// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// awaitErrorHandler handles both await and error effects.
// Await ops wait on ErrWouldBlock via iox.Backoff. Error ops short-circuit
// on Throw, which is how TryAsyncBind surfaces a failed or canceled call.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type awaitErrorHandler[E, A any] struct {
	sc     *scopeContext
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Await+Error handler.
// Dispatch order: Await → Error.
func (h awaitErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if aop, ok := op.(awaitDispatcher); ok {
		return dispatchWait(h.sc, aop), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("await: unhandled effect in awaitErrorHandler")
}

// ExecError runs an async protocol with error handling under the scope.
// Returns Either[E, R] — Right on success, Left on Throw.
// Blocks on iox.ErrWouldBlock via adaptive backoff, without spawning
// goroutines or creating channels.
func ExecError[E, R any](s *Scope, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := awaitErrorHandler[E, R]{sc: &s.sc, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr async protocol with error handling under the
// scope. Returns Either[E, R] — Right on success, Left on Throw.
// Blocks on iox.ErrWouldBlock via adaptive backoff, without spawning
// goroutines or creating channels.
func ExecErrorExpr[E, R any](s *Scope, protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := awaitErrorHandler[E, R]{sc: &s.sc, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// RunError runs both Cont-world protocols with error handling under one
// scope and returns both results as Either values. Interleaves execution on
// the calling goroutine using adaptive backoff (iox.Backoff).
// Does not spawn goroutines or create channels.
func RunError[E, A, B any](s *Scope, a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	return RunErrorExpr[E](s, Reify(a), Reify(b))
}

// RunErrorExpr runs both Expr-world protocols with error handling under one
// scope and returns both results as Either values. Interleaves execution on
// the calling goroutine using adaptive backoff (iox.Backoff).
// Does not spawn goroutines or create channels.
func RunErrorExpr[E, A, B any](s *Scope, a kont.Expr[A], b kont.Expr[B]) (kont.Either[E, A], kont.Either[E, B]) {
	resultA, suspA := StepError[E, A](a)
	resultB, suspB := StepError[E, B](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = AdvanceError[E](s, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = AdvanceError[E](s, suspB)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// StepError evaluates an async protocol with error support until the first
// await suspension. Returns (Either[E, R], nil) on completion or error,
// or (zero, suspension) if pending.
func StepError[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation under the scope.
// Await ops are non-blocking (ErrWouldBlock). Error ops are eager:
// Throw discards the suspension and returns Left.
func AdvanceError[E, R any](s *Scope, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	// Await ops: non-blocking dispatch
	if aop, ok := susp.Op().(awaitDispatcher); ok {
		v, err := aop.DispatchAwait(&s.sc)
		if err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("await: unhandled effect in AdvanceError")
}
