// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

import "bytes"

// SplitOnChar tokenizes input on a delimiter byte, appending one Buf per
// token to out. Tokens alias the input memory; nothing is copied and
// nothing is allocated, so the caller sizes out's capacity to the expected
// token count and must keep the input alive while using the results.
//
// Edge rules:
//   - input beginning with sep yields an empty first token
//   - adjacent delimiters yield an empty token between them
//   - a trailing delimiter is ignored
//
// When out's capacity runs out with tokens remaining, SplitOnChar returns
// the tokens appended so far together with [ErrMore]; the caller may resume
// by re-splitting the unconsumed tail or simply treat the result as
// truncated. ErrMore is a semantic signal, not a failure.
func SplitOnChar(input Buf, sep byte, out []Buf) ([]Buf, error) {
	return split(input, func(rest []byte) int {
		return bytes.IndexByte(rest, sep)
	}, 1, out)
}

// SplitOnStr tokenizes input on a multi-byte delimiter, with the same
// aliasing contract and edge rules as [SplitOnChar]. An empty separator
// yields the whole input as a single token.
func SplitOnStr(input Buf, sep Buf, out []Buf) ([]Buf, error) {
	if sep.Len == 0 {
		if len(out) == cap(out) {
			return out, ErrMore
		}
		return append(out, input), nil
	}
	s := sep.Bytes()
	return split(input, func(rest []byte) int {
		return bytes.Index(rest, s)
	}, len(s), out)
}

// split walks input with the given delimiter finder. index returns the
// offset of the next delimiter in the remaining bytes or -1, and sepLen is
// the number of bytes each delimiter occupies.
func split(input Buf, index func([]byte) int, sepLen int, out []Buf) ([]Buf, error) {
	b := input.Bytes()
	for {
		i := index(b)
		if i < 0 {
			break
		}
		if len(out) == cap(out) {
			return out, ErrMore
		}
		out = append(out, BufBytes(b[:i]))
		b = b[i+sepLen:]
	}
	// Trailing delimiter rule: an empty remainder is not a token.
	if len(b) > 0 {
		if len(out) == cap(out) {
			return out, ErrMore
		}
		out = append(out, BufBytes(b))
	}
	return out, nil
}
