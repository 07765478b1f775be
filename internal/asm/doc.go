// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides architecture-specific helpers for hot paths.
//
// Blind is an optimizer barrier: an identity function whose body the
// compiler cannot see through. On supported architectures it is a single
// move in assembly; elsewhere a //go:noinline Go fallback provides the
// same opacity at the cost of a call frame.
package asm
