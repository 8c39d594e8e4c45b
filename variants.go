// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"context"

	"code.hybscloud.com/kont"
)

var unit = struct{}{}

// unitStarter adapts an operation whose callback reports only an optional
// error (no success payload) to Starter form.
func unitStarter(start func(done func(err error)) Canceler) Starter[struct{}] {
	return func(done Completion[struct{}]) Canceler {
		return start(func(err error) {
			if err != nil {
				done(nil, err)
				return
			}
			done(&unit, nil)
		})
	}
}

// valueStarter adapts an operation whose callback cannot fail to Starter
// form. Cancellation still applies.
func valueStarter[T any](start func(done func(v T)) Canceler) Starter[T] {
	return func(done Completion[T]) Canceler {
		return start(func(v T) {
			done(&v, nil)
		})
	}
}

// eitherStarter adapts an operation whose callback carries two optional
// success slots to Starter form. The first populated slot wins as a tagged
// Either, eliminating the invalid all-empty success at the type level; both
// slots empty without an error surfaces as ErrNoOutcome. Wider slot fans
// compose as nested Either.
func eitherStarter[L, R any](start func(done func(l *L, r *R, err error)) Canceler) Starter[kont.Either[L, R]] {
	return func(done Completion[kont.Either[L, R]]) Canceler {
		return start(func(l *L, r *R, err error) {
			switch {
			case err != nil:
				done(nil, err)
			case l != nil:
				e := kont.Left[L, R](*l)
				done(&e, nil)
			case r != nil:
				e := kont.Right[L](*r)
				done(&e, nil)
			default:
				done(nil, nil)
			}
		})
	}
}

// DoUnit awaits an operation whose callback reports only an optional error.
func DoUnit(ctx context.Context, start func(done func(err error)) Canceler) error {
	_, err := Do(ctx, unitStarter(start))
	return err
}

// DoValue awaits a best-effort operation whose callback cannot fail.
// Only cancellation can produce an error.
func DoValue[T any](ctx context.Context, start func(done func(v T)) Canceler) (T, error) {
	return Do(ctx, valueStarter(start))
}

// DoEither awaits an operation whose callback carries two optional success
// slots, resolving to whichever slot was populated.
func DoEither[L, R any](ctx context.Context, start func(done func(l *L, r *R, err error)) Canceler) (kont.Either[L, R], error) {
	return Do(ctx, eitherStarter(start))
}
