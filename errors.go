// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

import "code.hybscloud.com/iox"

// ErrMore indicates a split produced a partial result: the destination
// slice ran out of capacity while tokens remained in the input.
//
// ErrMore is a control flow signal, not a failure. The caller either sizes
// the destination larger and retries, or accepts the truncated result.
//
// This is an alias for [iox.ErrMore] for ecosystem consistency.
var ErrMore = iox.ErrMore

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
