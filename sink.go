// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

// Into appends every element of p to dst, fully realizing p. The walk
// is streaming: only the current step is held.
func Into[V any](dst []V, p Producer[V]) ([]V, error) {
	for {
		v, err := Seq(p)
		if err != nil || v == nil {
			return dst, err
		}
		dst = append(dst, v.Head())
		p = v.Tail()
	}
}

// Each applies f to each element in order, stopping when f returns
// false or the sequence is exhausted.
func Each[V any](p Producer[V], f func(V) bool) error {
	for {
		v, err := Seq(p)
		if err != nil || v == nil {
			return err
		}
		if !f(v.Head()) {
			return nil
		}
		p = v.Tail()
	}
}

// Count fully realizes p and returns the number of elements.
func Count[V any](p Producer[V]) (int, error) {
	n := 0
	for {
		v, err := Seq(p)
		if err != nil || v == nil {
			return n, err
		}
		n++
		p = v.Tail()
	}
}
