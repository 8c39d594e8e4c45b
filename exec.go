// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world async protocol under the scope.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](s *Scope, protocol kont.Eff[R]) R {
	h := awaitHandler[R]{sc: &s.sc}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world async protocol under the scope.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](s *Scope, protocol kont.Expr[R]) R {
	h := awaitHandler[R]{sc: &s.sc}
	return kont.HandleExpr(protocol, h)
}
