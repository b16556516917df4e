// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// Map returns the lazy sequence of f applied to each element of p.
// Each step realizes its input exactly once when forced.
func Map[V, U any](f func(V) U, p Producer[V]) Producer[U] {
	return Delay[U](func() (Step[U], error) {
		v, err := Seq(p)
		if err != nil {
			return Step[U]{}, err
		}
		if v == nil {
			return Done[U](nil), nil
		}
		return Done(Cons(f(v.Head()), Map(f, v.Tail()))), nil
	})
}

// Filter returns the lazy sequence of elements of p satisfying pred.
// Rejected elements ride the [Loop] trampoline: each rejected step is
// released before the next input step is realized, so an arbitrarily
// long skip run holds one step at a time.
func Filter[V any](pred func(V) bool, p Producer[V]) Producer[V] {
	return Loop(p, func(s Producer[V]) (kont.Either[Producer[V], *View[V]], error) {
		v, err := Seq(s)
		if err != nil {
			return Finish[Producer[V], V](nil), err
		}
		if v == nil {
			return Finish[Producer[V], V](nil), nil
		}
		if pred(v.Head()) {
			return Finish[Producer[V], V](Cons(v.Head(), Filter(pred, v.Tail()))), nil
		}
		return Continue[Producer[V], V](v.Tail()), nil
	})
}

// Concat lazily concatenates producers. Realizing a step forces at most
// one step of the first non-exhausted input and none of the inputs
// after it.
func Concat[V any](ps ...Producer[V]) Producer[V] {
	out := Empty[V]()
	for i := len(ps) - 1; i >= 0; i-- {
		out = concat2(ps[i], out)
	}
	return out
}

func concat2[V any](a, b Producer[V]) Producer[V] {
	return Delay[V](func() (Step[V], error) {
		v, err := Seq(a)
		if err != nil {
			return Step[V]{}, err
		}
		if v == nil {
			// First input exhausted: hand the second to the forcing loop.
			return ContinueWith(b), nil
		}
		return Done(Cons(v.Head(), concat2(v.Tail(), b))), nil
	})
}

// Take returns the lazy sequence of at most n elements of p.
func Take[V any](n int, p Producer[V]) Producer[V] {
	return Delay[V](func() (Step[V], error) {
		if n <= 0 {
			return Done[V](nil), nil
		}
		v, err := Seq(p)
		if err != nil {
			return Step[V]{}, err
		}
		if v == nil {
			return Done[V](nil), nil
		}
		return Done(Cons(v.Head(), Take(n-1, v.Tail()))), nil
	})
}

// dropState carries how many steps remain to skip and where to skip
// from.
type dropState[V any] struct {
	n int
	p Producer[V]
}

// Drop returns the lazy sequence of p without its first n elements.
// Skipping rides the [Loop] trampoline.
func Drop[V any](n int, p Producer[V]) Producer[V] {
	return Loop(dropState[V]{n: n, p: p}, func(s dropState[V]) (kont.Either[dropState[V], *View[V]], error) {
		v, err := Seq(s.p)
		if err != nil {
			return Finish[dropState[V], V](nil), err
		}
		if v == nil {
			return Finish[dropState[V], V](nil), nil
		}
		if s.n <= 0 {
			return Finish[dropState[V], V](v), nil
		}
		return Continue[dropState[V], V](dropState[V]{n: s.n - 1, p: v.Tail()}), nil
	})
}
