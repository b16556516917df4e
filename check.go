// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build lseqcheck

package lseq

// misuseChecks enables construction-time misuse assertions: nil tails
// in Cons, nil continue targets, nil bodies and steps. Enabled with
// -tags lseqcheck; release builds compile the checks out.
const misuseChecks = true
