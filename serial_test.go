// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq_test

import (
	"testing"

	"code.hybscloud.com/lseq"
)

func TestSerialMonotonic(t *testing.T) {
	s1 := lseq.NewStream[int](2).Serial()
	s2 := lseq.NewStream[int](2).Serial()
	s3 := lseq.NewStream[string](2).Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}
