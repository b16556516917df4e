// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lseq provides a lazy sequence engine: memory-bounded, potentially
// infinite sequences built from memoizing cells and realized on demand
// through an explicit protocol, with trampolined evaluation on
// [code.hybscloud.com/kont.Either] continue signals.
//
// # Architecture
//
//   - Cells: [Delay] wraps a [Thunk] in a memoizing [Cell]. The body runs at
//     most once; the outcome (view or error) is cached and shared. Cell state
//     transitions are atomic via [code.hybscloud.com/atomix].
//   - Single-flight: concurrent forcers of an in-flight cell wait with
//     adaptive backoff ([code.hybscloud.com/iox.Backoff]); the body is never
//     re-executed. Reentrant forcing is reported as [ErrReentrantForce].
//   - Trampoline: a body returns [Done] (a realized view, or nil for
//     absence) or [ContinueWith] (a further producer). Continue signals are
//     consumed iteratively by the forcing loop, so chained cells cost heap,
//     not stack, and every cell along the chain settles to the final view.
//   - Retention: [Loop] iterates a state-step function, zeroing the state
//     slot before each step so skip-chains (e.g. [Filter]) never keep
//     superseded inputs reachable.
//
// # Realization Protocol
//
//   - [Seq] realizes a producer into a [View] or nil (absence). It is the
//     only boundary where exhaustion becomes observable.
//   - [First] returns the head; [Rest] returns the remainder and never
//     reports absence: an exhausted producer yields [Empty].
//   - [Next] is Seq of Rest: the eager "is there more" decision.
//
// # Combinators
//
//   - [Map], [Filter], [Concat], [Take], [Drop] build new cells whose bodies
//     call [Seq] on their inputs exactly once per step when forced.
//   - [Range], [RangeFrom], [Iterate], [FromSlice] generate sequences from
//     indexes, state, and slices.
//   - [Into], [Each], [Count] drive a sequence to completion.
//
// # Integration
//
//   - [Stream]: a bounded handoff from a producer goroutine into a lazy
//     sequence, backed by a lock-free SPSC queue from
//     [code.hybscloud.com/lfq]. [Stream.Push] is non-blocking and returns
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure; consumer-side
//     realization waits past the empty boundary with adaptive backoff and
//     drains remaining elements after [Stream.Close].
//   - Foreign producers: anything implementing [Producer] participates in
//     the protocol and the combinators.
//
// # Example
//
//	evens := lseq.Filter(func(n int) bool { return n%2 == 0 }, lseq.Range(0, 6))
//	doubled := lseq.Map(func(n int) int { return n * 2 }, evens)
//	out, _ := lseq.Into(nil, doubled) // [0 4 8]
package lseq
