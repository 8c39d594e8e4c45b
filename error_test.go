// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/await"
)

func TestOpErrorWrapsCause(t *testing.T) {
	cause := errors.New("network down")
	oe := &await.OpError{Cause: cause}

	if oe.Unwrap() != cause {
		t.Fatal("Unwrap did not return the cause verbatim")
	}
	if !errors.Is(oe, cause) {
		t.Fatal("errors.Is does not reach the cause")
	}
	if !strings.Contains(oe.Error(), "network down") {
		t.Fatalf("message lost the cause: %q", oe.Error())
	}
}

func TestCancellationDistinguishableFromFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := await.Do(ctx, never[int](&fakeHandle{}))

	if !errors.Is(err, await.ErrCanceled) {
		t.Fatalf("got %v, want ErrCanceled", err)
	}
	var oe *await.OpError
	if errors.As(err, &oe) {
		t.Fatal("cancellation must not look like an operation failure")
	}
}

func TestFailureDistinguishableFromCancellation(t *testing.T) {
	cause := errors.New("boom")
	_, err := await.Do[int](context.Background(), immediateFail[int](cause))

	if errors.Is(err, await.ErrCanceled) {
		t.Fatal("failure must not look like cancellation")
	}
	var oe *await.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OpError, got %T", err)
	}
	if oe.Cause != cause {
		t.Fatal("cause not carried verbatim")
	}
}

func TestNoOutcomeIsNotOpError(t *testing.T) {
	starter := func(done await.Completion[int]) await.Canceler {
		done(nil, nil)
		return await.CancelFunc(nil)
	}
	_, err := await.Do(context.Background(), starter)
	if !errors.Is(err, await.ErrNoOutcome) {
		t.Fatalf("got %v, want ErrNoOutcome", err)
	}
	var oe *await.OpError
	if errors.As(err, &oe) {
		t.Fatal("contract violation must not look like an operation failure")
	}
}
