// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run evaluates two Cont-world async protocols under one scope and returns
// both results. The wrapped operations complete on their own callbacks, so
// interleaving dispatch on the calling goroutine awaits both concurrently
// without spawning goroutines or creating channels. Adaptive backoff
// (iox.Backoff) waits when neither side can make progress.
func Run[A, B any](s *Scope, a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(s, Reify(a), Reify(b))
}

// RunExpr evaluates two Expr-world async protocols under one scope and
// returns both results. Interleaves dispatch on the calling goroutine
// using adaptive backoff (iox.Backoff) when neither side can make
// progress. Does not spawn goroutines or create channels.
func RunExpr[A, B any](s *Scope, a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var aopA awaitDispatcher
	if suspA != nil {
		aopA = suspA.Op().(awaitDispatcher)
	}
	var aopB awaitDispatcher
	if suspB != nil {
		aopB = suspB.Op().(awaitDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := aopA.DispatchAwait(&s.sc)
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					aopA = suspA.Op().(awaitDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := aopB.DispatchAwait(&s.sc)
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					aopB = suspB.Op().(awaitDispatcher)
				}
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
