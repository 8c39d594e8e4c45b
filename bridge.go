// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"code.hybscloud.com/kont"
)

// Reify lowers a Cont-world protocol into Expr-world form, where each
// pending await surfaces as an inspectable suspension. Evaluate the result
// with ExecExpr or RunExpr, or drive it manually with Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect lifts an Expr-world protocol back into Cont-world form for
// direct evaluation with Exec or Run.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
