// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// scopeContext carries the cancellable context that await operations are
// dispatched under.
type scopeContext struct {
	ctx context.Context
}

// awaitDispatcher is the structural interface for await operations.
// DispatchAwait is non-blocking: it returns iox.ErrWouldBlock at the
// completion boundary while the wrapped operation has not delivered.
type awaitDispatcher interface {
	DispatchAwait(sc *scopeContext) (kont.Resumed, error)
}

// awaitHandler implements kont.Handler for await effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type awaitHandler[R any] struct {
	sc *scopeContext
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h awaitHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	aop, ok := op.(awaitDispatcher)
	if !ok {
		panic("await: unhandled effect in awaitHandler")
	}
	return dispatchWait(h.sc, aop), true
}

// dispatchWait blocks until DispatchAwait succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (completion readiness waiting).
func dispatchWait(sc *scopeContext, aop awaitDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := aop.DispatchAwait(sc)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Scope binds protocol evaluation to a cancellable context, the coroutine
// scope of every await operation dispatched under it. Canceling the context
// resolves pending operations to ErrCanceled and propagates cancellation to
// their handles at most once each.
type Scope struct {
	sc scopeContext
}

// NewScope creates an evaluation scope over ctx.
// A nil ctx means context.Background().
func NewScope(ctx context.Context) *Scope {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Scope{sc: scopeContext{ctx: ctx}}
}

// Context returns the context the scope was created over.
func (s *Scope) Context() context.Context {
	return s.sc.ctx
}
