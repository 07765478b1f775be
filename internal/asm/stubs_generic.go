// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package asm

// Blind returns x through a call the inliner is forbidden to flatten,
// keeping the value opaque to the optimizer on architectures without an
// assembly body.
//
//go:noinline
func Blind(x uintptr) uintptr {
	return x
}
