// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/await"
)

// fakeHandle records cancellation requests against a fake SDK operation.
type fakeHandle struct {
	cancels atomix.Uint32
}

func (h *fakeHandle) Cancel() { h.cancels.Add(1) }

// fetchAfter simulates an SDK call whose callback reports v after d.
func fetchAfter[T any](h *fakeHandle, d time.Duration, v T) await.Starter[T] {
	return func(done await.Completion[T]) await.Canceler {
		go func() {
			time.Sleep(d)
			done(&v, nil)
		}()
		return h
	}
}

// failAfter simulates an SDK call whose callback reports err after d.
func failAfter[T any](h *fakeHandle, d time.Duration, err error) await.Starter[T] {
	return func(done await.Completion[T]) await.Canceler {
		go func() {
			time.Sleep(d)
			done(nil, err)
		}()
		return h
	}
}

// never simulates an SDK call whose callback never fires in the test window.
func never[T any](h *fakeHandle) await.Starter[T] {
	return func(done await.Completion[T]) await.Canceler {
		return h
	}
}

// immediate simulates an SDK call whose callback fires synchronously,
// before the handle is even returned.
func immediate[T any](v T) await.Starter[T] {
	return func(done await.Completion[T]) await.Canceler {
		done(&v, nil)
		return await.CancelFunc(nil)
	}
}

// immediateFail simulates an SDK call that reports err synchronously.
func immediateFail[T any](err error) await.Starter[T] {
	return func(done await.Completion[T]) await.Canceler {
		done(nil, err)
		return await.CancelFunc(nil)
	}
}
