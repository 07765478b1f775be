// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

import (
	"math/bits"

	"code.hybscloud.com/memx/internal/asm"
)

// NospecIndex clamps index into [0, bound) without branching.
//
// It returns index when index < bound and both values are at or below half
// the uintptr range, and 0 otherwise. The half-range restriction exists
// because bound - index - 1 would otherwise wrap an out-of-range value back
// into apparent range once the top bit is set.
//
// The whole computation is bitwise masking: the in-range and out-of-range
// cases execute identical instructions, so a mispredicted branch in the
// caller cannot steer a speculated index outside [0, bound). The index is
// routed through an optimizer barrier first, preventing the compiler from
// proving the mask redundant and deleting it.
//
// NospecIndex touches no memory itself. It is the building block for
// speculation-safe bounds checks, not a replacement for them: a caller that
// branches on an out-of-range result before clamping is not protected.
func NospecIndex(index, bound uintptr) uintptr {
	index = asm.Blind(index)

	// Sign bit of either input set: out of range regardless of comparison.
	negativeMask := index | bound
	// Sign bit set exactly when index >= bound (given sign-clear inputs).
	toobigMask := bound - index - 1
	combinedMask := negativeMask | toobigMask

	// In range iff the combined sign bit is clear. Move the inverted sign
	// bit to position 0, then spread it across the register: all-ones for
	// in range, all-zeros otherwise.
	combinedMask = ^combinedMask >> (bits.UintSize - 1)
	combinedMask *= ^uintptr(0)

	return index & combinedMask
}
