// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq_test

import (
	"testing"

	"code.hybscloud.com/lseq"
)

// drain collects every element of p, failing the test on error.
func drain[V any](tb testing.TB, p lseq.Producer[V]) []V {
	tb.Helper()
	out, err := lseq.Into(nil, p)
	if err != nil {
		tb.Fatalf("drain: %v", err)
	}
	return out
}

// counting returns an unbounded producer of ints from `from` that
// increments *forced each time a step body runs. Used to observe how
// far a combinator actually realizes its input.
func counting(from int, forced *int) lseq.Producer[int] {
	return lseq.Delay[int](func() (lseq.Step[int], error) {
		*forced++
		return lseq.Done(lseq.Cons(from, counting(from+1, forced))), nil
	})
}
