// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

// Seq realizes p into a view, or nil when p has no elements. This is
// the single boundary where exhaustion becomes observable: callers
// branch on the returned view, never on the producer itself. Forcing at
// most one cell chain; already-realized views come back unchanged.
// A nil producer realizes to absence.
func Seq[V any](p Producer[V]) (*View[V], error) {
	if p == nil {
		return nil, nil
	}
	return p.Realize()
}

// First realizes p and returns its head. ok is false when p has no
// elements.
func First[V any](p Producer[V]) (V, bool, error) {
	v, err := Seq(p)
	if err != nil || v == nil {
		var zero V
		return zero, false, err
	}
	return v.Head(), true, nil
}

// Rest realizes p and returns the remainder after its first element.
// Rest never reports absence: an exhausted producer yields [Empty], so
// the "anything left?" decision stays with the next Seq call. Rest of
// Empty is Empty.
func Rest[V any](p Producer[V]) (Producer[V], error) {
	v, err := Seq(p)
	if err != nil || v == nil {
		return Empty[V](), err
	}
	return v.Tail(), nil
}

// Next realizes what remains after the first element of p:
// Next(p) == Seq(Rest(p)). This is the eager "is there more" form;
// lazy producers compose through Rest instead.
func Next[V any](p Producer[V]) (*View[V], error) {
	r, err := Rest(p)
	if err != nil {
		return nil, err
	}
	return Seq(r)
}
