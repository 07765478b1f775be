// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64

package asm

// Blind returns x. Implemented in assembly so the compiler treats the
// result as unpredictable: no constant folding, no range propagation, no
// elimination of masking arithmetic downstream of the call.
//
//go:noescape
func Blind(x uintptr) uintptr
