// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/lseq"
)

// TestPropertyIntoMatchesModel proves that for any arbitrarily generated
// slice of integers, a map+filter pipeline realizes exactly the elements
// an imperative loop over the same slice would produce, in the same order.
func TestPropertyIntoMatchesModel(t *testing.T) {
	propertyModel := func(payload []int) bool {
		double := func(n int) int { return n * 2 }
		even := func(n int) bool { return n%2 == 0 }

		pipeline := lseq.Filter(even, lseq.Map(double, lseq.FromSlice(payload)))
		got, err := lseq.Into(nil, pipeline)
		if err != nil {
			return false
		}

		var want []int
		for _, n := range payload {
			if even(double(n)) {
				want = append(want, double(n))
			}
		}
		if len(want) == 0 && len(got) == 0 {
			return true
		}
		return reflect.DeepEqual(got, want)
	}

	if err := quick.Check(propertyModel, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyNextMatchesSeqOfRest proves the protocol identity
// next(p) = seq(rest(p)) at every position of an arbitrary sequence.
func TestPropertyNextMatchesSeqOfRest(t *testing.T) {
	propertyNext := func(payload []int) bool {
		a := lseq.FromSlice(payload)
		b := lseq.FromSlice(payload)

		for {
			va, erra := lseq.Next(a)
			rb, errb := lseq.Rest(b)
			var vb *lseq.View[int]
			if errb == nil {
				vb, errb = lseq.Seq(rb)
			}
			if erra != nil || errb != nil {
				return false
			}
			if (va == nil) != (vb == nil) {
				return false
			}
			if va == nil {
				return true
			}
			if va.Head() != vb.Head() {
				return false
			}
			a, b = va, vb
		}
	}

	if err := quick.Check(propertyNext, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyConcatIsAppend proves Concat realizes the concatenation of
// its inputs for arbitrary slices.
func TestPropertyConcatIsAppend(t *testing.T) {
	propertyConcat := func(xs, ys, zs []int) bool {
		p := lseq.Concat[int](
			lseq.FromSlice(xs), lseq.FromSlice(ys), lseq.FromSlice(zs))
		got, err := lseq.Into(nil, p)
		if err != nil {
			return false
		}

		want := append(append(append([]int(nil), xs...), ys...), zs...)
		if len(want) == 0 && len(got) == 0 {
			return true
		}
		return reflect.DeepEqual(got, want)
	}

	if err := quick.Check(propertyConcat, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyStreamFIFO proves that for any arbitrarily generated sequence
// of integers pushed through a stream, realization observes strict FIFO
// delivery without loss, duplication, or reordering.
func TestPropertyStreamFIFO(t *testing.T) {
	skipRace(t)

	propertyFIFO := func(payload []int) bool {
		st := lseq.NewStream[int](8)

		go func() {
			for _, v := range payload {
				for st.Push(v) != nil {
					// ring full: consumer not there yet
				}
			}
			st.Close()
		}()

		got, err := lseq.Into(nil, st.Seq())
		if err != nil {
			return false
		}
		if len(payload) == 0 && len(got) == 0 {
			return true
		}
		return reflect.DeepEqual(got, payload)
	}

	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}
