// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "errors"

// ErrCanceled resolves an awaited operation whose surrounding scope was
// canceled before a completion landed. Distinguished from OpError so callers
// can special-case user-initiated cancellation versus genuine failure.
var ErrCanceled = errors.New("await: canceled")

// ErrNoOutcome reports a contract violation by the wrapped operation: its
// completion callback delivered neither a value nor an error.
var ErrNoOutcome = errors.New("await: operation reported no outcome")

// OpError wraps an error reported through the wrapped operation's completion
// callback. The cause propagates verbatim via Unwrap; the adapter performs
// no local recovery or retry.
type OpError struct {
	Cause error
}

func (e *OpError) Error() string { return "await: operation failed: " + e.Cause.Error() }

func (e *OpError) Unwrap() error { return e.Cause }
