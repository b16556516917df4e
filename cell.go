// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"github.com/petermattis/goid"
)

// Step is the outcome of one thunk execution: Left carries a further
// producer for the forcing loop to realize (trampoline continue), Right
// carries the realized view (nil for absence).
type Step[V any] = kont.Either[Producer[V], *View[V]]

// Done builds the realized outcome of a thunk. A nil view means the
// producer had no elements.
func Done[V any](v *View[V]) Step[V] {
	return kont.Right[Producer[V]](v)
}

// ContinueWith hands a further producer back to the forcing loop, which
// realizes it iteratively rather than by nested recursion.
func ContinueWith[V any](p Producer[V]) Step[V] {
	if misuseChecks && p == nil {
		panic("lseq: ContinueWith with nil producer")
	}
	return kont.Left[Producer[V], *View[V]](p)
}

// Thunk computes one realization step. The thunk is owned by the cell
// wrapping it and executes at most once; its captured state is released
// as soon as the single execution is claimed.
type Thunk[V any] func() (Step[V], error)

// Cell states. Transitions only move forward:
// unforced → forcing → forced | failed.
const (
	cellUnforced uint32 = iota
	cellForcing
	cellForced
	cellFailed
)

// Cell is a call-once cached deferred computation: the atomic unit of
// laziness. The first forcer executes the body exactly once and caches
// the outcome; every later forcer, on any goroutine, observes the same
// cached view or error. A forced cell is immutable and freely shared.
type Cell[V any] struct {
	state  atomix.Uint32
	forcer atomix.Uint64
	body   Thunk[V]
	view   *View[V]
	err    error
}

// Delay wraps body in a memoizing cell.
func Delay[V any](body Thunk[V]) *Cell[V] {
	if misuseChecks && body == nil {
		panic("lseq: Delay with nil body")
	}
	return &Cell[V]{body: body}
}

// Defer wraps a body that produces a further sequence: the returned
// cell realizes to whatever the body's result realizes to. A nil result
// realizes to absence. This is the lazy-block primitive; the body runs
// at most once, when first forced.
func Defer[V any](body func() (Producer[V], error)) *Cell[V] {
	return Delay(func() (Step[V], error) {
		p, err := body()
		if err != nil {
			return Step[V]{}, err
		}
		if p == nil {
			return Done[V](nil), nil
		}
		return ContinueWith(p), nil
	})
}

// Realize implements [Producer]. The first call executes the body;
// later calls return the cached outcome without re-execution.
func (c *Cell[V]) Realize() (*View[V], error) {
	switch c.state.Load() {
	case cellForced:
		return c.view, nil
	case cellFailed:
		return nil, c.err
	}
	return forceChain(c)
}

// acquire claims body execution, recording the forcing goroutine so a
// reentrant force is distinguishable from cross-goroutine contention.
func (c *Cell[V]) acquire(self uint64) bool {
	if !c.state.CompareAndSwap(cellUnforced, cellForcing) {
		return false
	}
	c.forcer.Store(self)
	return true
}

// await blocks until the in-flight force settles, backing off
// adaptively (single-flight). A goroutine meeting its own in-flight
// cell gets ErrReentrantForce instead of a deadlock.
func (c *Cell[V]) await(self uint64) (*View[V], error) {
	var bo iox.Backoff
	for {
		switch c.state.Load() {
		case cellForced:
			return c.view, nil
		case cellFailed:
			return nil, c.err
		}
		if c.forcer.Load() == self {
			return nil, ErrReentrantForce
		}
		bo.Wait()
	}
}

// settle publishes the outcome. The view/error write happens before the
// state store; readers load the state first.
func (c *Cell[V]) settle(view *View[V], err error) {
	if err != nil {
		c.err = err
		c.state.Store(cellFailed)
		return
	}
	c.view = view
	c.state.Store(cellForced)
}

// forceChain executes root's body and consumes any chain of
// ContinueWith signals in one iterative loop. Every cell acquired along
// the chain settles to the final outcome, so chained cells are bounded
// by heap, not call-stack depth, and each link still runs at most once.
func forceChain[V any](root *Cell[V]) (view *View[V], err error) {
	self := uint64(goid.Get())
	if !root.acquire(self) {
		return root.await(self)
	}
	var chain []*Cell[V] // cells acquired past root; empty unless bodies chain
	defer func() {
		r := recover()
		if r != nil {
			view, err = nil, fmt.Errorf("%w: %v", ErrForcePanic, r)
		}
		root.settle(view, err)
		for _, c := range chain {
			c.settle(view, err)
		}
		if r != nil {
			panic(r)
		}
	}()

	cur := root
	for {
		body := cur.body
		cur.body = nil // captured state dies with the single execution
		var step Step[V]
		step, err = body()
		if err != nil {
			return nil, err
		}
		next, cont := step.GetLeft()
		if !cont {
			view, _ = step.GetRight()
			return view, nil
		}
		if next == nil {
			return nil, nil // continued into nothing: absence
		}
		cc, ok := next.(*Cell[V])
		if !ok {
			// Already-realized or foreign form: shallow, no further chaining.
			view, err = next.Realize()
			return view, err
		}
		if !cc.acquire(self) {
			// Settled or in flight elsewhere; adopt its outcome.
			view, err = cc.await(self)
			return view, err
		}
		chain = append(chain, cc)
		cur = cc
	}
}
