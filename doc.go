// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package await adapts callback-plus-cancellation asynchronous APIs into
// awaitable calls with cooperative cancellation, with protocol composition
// via algebraic effects on [code.hybscloud.com/kont].
//
// A wrapped operation is any function that accepts a completion callback and
// synchronously returns a cancellation handle — the idiom of closed-source
// SDK surfaces. The adapter delivers exactly one of success, failure, or
// cancellation per invocation, and propagates cancellation to the handle at
// most once.
//
// # Architecture
//
//   - Adapter: [Call] is a single-use bridge from one callback invocation to
//     one outcome. Resolution is an atomic state machine over
//     [code.hybscloud.com/atomix]; the cancellation-handle slot tolerates the
//     race between handle publication and a cancellation request.
//   - Non-blocking: [Call.Poll], [Job.Progress], and effect dispatch return
//     [code.hybscloud.com/iox.ErrWouldBlock] while pending.
//   - Blocking: [Call.Await], [Do], and [Exec] wait past boundaries using
//     adaptive backoff, without spawning goroutines or creating channels.
//   - Cancellation: cooperative, flowing inward from a [context.Context]
//     bound at [Call.Start] or to a [Scope]. The adapter implements no
//     timeouts of its own; a deadline is an external context deadline.
//
// # API Topologies
//
//   - One-shot: [Do], [DoUnit], [DoValue], [DoEither].
//   - Adapter instances: [Call], and [Job] for progress-reporting operations
//     (events buffered on bounded [code.hybscloud.com/lfq] SPSC queues).
//   - Cont-world: [AsyncBind], [TryAsyncBind], [UnitThen], [ValueBind].
//   - Expr-world: [ExprAsyncBind], [ExprTryAsyncBind]. Bridge via [Reify]
//     and [Reflect].
//   - Retry: [Loop] and [Retry]. Retry policy belongs to the caller, never
//     to the adapter.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError])
//     evaluate protocols one await at a time, making them easy to integrate
//     with a proactor loop.
//   - Blocking: [Exec], [Run] (and Error/Expr variants) evaluate protocols
//     to completion under a [Scope] using adaptive backoff.
//
// # Example
//
//	v, err := await.Do(ctx, func(done await.Completion[int]) await.Canceler {
//		op := sdk.FetchAsync(func(n int, err error) {
//			if err != nil {
//				done(nil, err)
//				return
//			}
//			done(&n, nil)
//		})
//		return await.CancelFunc(op.Abort)
//	})
package await
