// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !lseqcheck

package lseq

// misuseChecks is compiled out of release builds; misused nil values
// are normalized instead of asserted. Build with -tags lseqcheck to
// turn the assertions on.
const misuseChecks = false
