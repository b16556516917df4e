// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import "errors"

// ErrReentrantForce reports that a cell was forced, directly or
// transitively, from within its own thunk body. Reported instead of
// deadlocking; terminal for the cell once the body propagates it.
var ErrReentrantForce = errors.New("lseq: cell forced from its own thunk")

// ErrForcePanic wraps a panic raised by a thunk body. The cell settles
// as failed with this error before the panic is re-raised, so
// single-flight waiters observe the failure instead of spinning.
var ErrForcePanic = errors.New("lseq: thunk panicked")

// ErrClosed reports a push on a closed stream.
var ErrClosed = errors.New("lseq: push on closed stream")

// IsReentrant reports whether err is a reentrant-force failure.
func IsReentrant(err error) bool {
	return errors.Is(err, ErrReentrantForce)
}
