// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

// Range returns the lazy sequence of integers from lo (inclusive) to hi
// (exclusive). An inverted range is empty.
func Range(lo, hi int) Producer[int] {
	return Delay[int](func() (Step[int], error) {
		if lo >= hi {
			return Done[int](nil), nil
		}
		return Done(Cons(lo, Range(lo+1, hi))), nil
	})
}

// RangeFrom returns the unbounded lazy sequence lo, lo+1, lo+2, ...
func RangeFrom(lo int) Producer[int] {
	return Delay[int](func() (Step[int], error) {
		return Done(Cons(lo, RangeFrom(lo+1))), nil
	})
}

// Iterate returns the lazy sequence seed, f(seed), f(f(seed)), ...
// f is applied only when the element it produces is realized: forcing
// the first element never calls f.
func Iterate[V any](f func(V) V, seed V) Producer[V] {
	return Delay[V](func() (Step[V], error) {
		tail := Delay[V](func() (Step[V], error) {
			return ContinueWith[V](Iterate(f, f(seed))), nil
		})
		return Done(Cons(seed, tail)), nil
	})
}

// FromSlice returns a lazy sequence over the elements of s. The slice
// is walked incrementally and never copied.
func FromSlice[V any](s []V) Producer[V] {
	return Delay[V](func() (Step[V], error) {
		if len(s) == 0 {
			return Done[V](nil), nil
		}
		return Done(Cons(s[0], FromSlice(s[1:]))), nil
	})
}
