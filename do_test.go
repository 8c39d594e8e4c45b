// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/await"
)

func TestDoUnitSuccess(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(err error)) await.Canceler {
		go func() {
			time.Sleep(time.Millisecond)
			done(nil)
		}()
		return h
	}
	if err := await.DoUnit(context.Background(), starter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoUnitFailure(t *testing.T) {
	h := &fakeHandle{}
	cause := errors.New("sync interrupted")
	starter := func(done func(err error)) await.Canceler {
		go func() { done(cause) }()
		return h
	}
	err := await.DoUnit(context.Background(), starter)
	if !errors.Is(err, cause) {
		t.Fatalf("cause not propagated: %v", err)
	}
}

func TestDoValue(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(v string)) await.Canceler {
		go func() { done("best effort") }()
		return h
	}
	v, err := await.DoValue(context.Background(), starter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "best effort" {
		t.Fatalf("got %q, want %q", v, "best effort")
	}
}

func TestDoValueCancellation(t *testing.T) {
	// The no-failure variant can still be canceled.
	h := &fakeHandle{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	starter := func(done func(v string)) await.Canceler { return h }
	_, err := await.DoValue(ctx, starter)
	if !errors.Is(err, await.ErrCanceled) {
		t.Fatalf("got %v, want ErrCanceled", err)
	}
}

func TestDoEitherLeft(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(l *string, r *int, err error)) await.Canceler {
		go func() {
			s := "left slot"
			done(&s, nil, nil)
		}()
		return h
	}
	e, err := await.DoEither(context.Background(), starter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, ok := e.GetLeft()
	if !ok || l != "left slot" {
		t.Fatalf("got %+v, want Left(%q)", e, "left slot")
	}
}

func TestDoEitherRight(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(l *string, r *int, err error)) await.Canceler {
		go func() {
			n := 9
			done(nil, &n, nil)
		}()
		return h
	}
	e, err := await.DoEither(context.Background(), starter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := e.GetRight()
	if !ok || r != 9 {
		t.Fatalf("got %+v, want Right(9)", e)
	}
}

func TestDoEitherFirstSlotWins(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(l *string, r *int, err error)) await.Canceler {
		go func() {
			s, n := "both", 1
			done(&s, &n, nil)
		}()
		return h
	}
	e, err := await.DoEither(context.Background(), starter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsLeft() {
		t.Fatalf("got %+v, want the first populated slot (Left)", e)
	}
}

func TestDoEitherAllEmpty(t *testing.T) {
	h := &fakeHandle{}
	starter := func(done func(l *string, r *int, err error)) await.Canceler {
		go func() { done(nil, nil, nil) }()
		return h
	}
	_, err := await.DoEither(context.Background(), starter)
	if !errors.Is(err, await.ErrNoOutcome) {
		t.Fatalf("got %v, want ErrNoOutcome", err)
	}
}

func TestDoEitherError(t *testing.T) {
	h := &fakeHandle{}
	cause := errors.New("resolve failed")
	starter := func(done func(l *string, r *int, err error)) await.Canceler {
		go func() { done(nil, nil, cause) }()
		return h
	}
	_, err := await.DoEither(context.Background(), starter)
	if !errors.Is(err, cause) {
		t.Fatalf("cause not propagated: %v", err)
	}
}
