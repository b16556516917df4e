// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

// Producer is anything that can be realized into a view or absence.
// Concrete variants in this package: an already-realized [View], a
// memoizing [Cell], and the canonical [Empty] marker. Foreign
// implementations participate in the protocol and the combinators.
type Producer[V any] interface {
	// Realize normalizes the producer into its realized form: a view
	// (head plus lazily realizable remainder) or nil for absence.
	// Realizing never forces the remainder.
	Realize() (*View[V], error)
}

// View is one realized step of a sequence: an immutable pair of a head
// value and a reference to the lazily realizable remainder.
type View[V any] struct {
	head V
	tail Producer[V]
}

// Head returns the realized head value.
func (v *View[V]) Head() V { return v.head }

// Tail returns the remainder reference. The remainder is not forced.
func (v *View[V]) Tail() Producer[V] { return v.tail }

// Realize implements [Producer]: a view is its own realized form.
func (v *View[V]) Realize() (*View[V], error) {
	return v, nil
}

// Cons builds a view from head and a tail producer without forcing the
// tail. A nil tail is normalized to [Empty] (and asserts under the
// lseqcheck build tag).
func Cons[V any](head V, tail Producer[V]) *View[V] {
	if tail == nil {
		if misuseChecks {
			panic("lseq: Cons with nil tail")
		}
		tail = Empty[V]()
	}
	return &View[V]{head: head, tail: tail}
}

// emptySeq is the canonical realized zero-length sequence form.
// Zero-size, so Empty never allocates.
type emptySeq[V any] struct{}

// Realize implements [Producer]. Empty collapses to absence.
func (emptySeq[V]) Realize() (*View[V], error) {
	return nil, nil
}

// Empty returns the canonical empty producer. Distinct from absence:
// Empty is a concrete, inspectable producer with zero remaining
// elements, while absence is the nil view [Seq] returns for it.
func Empty[V any]() Producer[V] {
	return emptySeq[V]{}
}
