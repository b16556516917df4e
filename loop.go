// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// Loop returns a producer that realizes by trampolining step from
// initial. step returns Continue(nextState) to keep iterating or
// Finish(view) to realize (a nil view means exhausted). The state slot
// is zeroed before each step runs, so a skip chain never keeps its
// superseded inputs reachable. Safe because the surrounding cell
// guarantees at most one execution of the loop.
func Loop[S, V any](initial S, step func(S) (kont.Either[S, *View[V]], error)) *Cell[V] {
	if misuseChecks && step == nil {
		panic("lseq: Loop with nil step")
	}
	state := initial
	return Delay[V](func() (Step[V], error) {
		for {
			cur := state
			var zero S
			state = zero // release the slot before running the step
			e, err := step(cur)
			if err != nil {
				return Step[V]{}, err
			}
			next, cont := e.GetLeft()
			if cont {
				state = next
				continue
			}
			view, _ := e.GetRight()
			return Done(view), nil
		}
	})
}

// Continue builds the keep-iterating signal consumed by [Loop].
func Continue[S, V any](next S) kont.Either[S, *View[V]] {
	return kont.Left[S, *View[V]](next)
}

// Finish builds the realized signal consumed by [Loop].
func Finish[S, V any](view *View[V]) kont.Either[S, *View[V]] {
	return kont.Right[S](view)
}
