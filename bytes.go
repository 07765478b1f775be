// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

import "unsafe"

// maxLen is the largest length a cursor operation accepts. Lengths above
// half the uintptr range would make the wrap-around arithmetic in bounds
// checks ambiguous, so they are rejected outright.
const maxLen = ^uintptr(0) >> 1

// Buf is a non-owning view over a contiguous byte region: a data pointer
// and a length. It never copies, never allocates, and performs no validity
// checks on construction; the caller guarantees the backing memory outlives
// the view. The zero value (nil, 0) is the conventional empty view.
type Buf struct {
	Ptr *byte
	Len uintptr
}

// BufBytes wraps an existing byte slice. No copy is made; the view aliases
// the slice's backing array.
func BufBytes(b []byte) Buf {
	return Buf{Ptr: unsafe.SliceData(b), Len: uintptr(len(b))}
}

// BufString wraps a string's bytes without copying. The view must be
// treated as read-only; writing through it is undefined behavior.
func BufString(s string) Buf {
	return Buf{Ptr: unsafe.StringData(s), Len: uintptr(len(s))}
}

// Bytes returns the viewed region as a byte slice aliasing the same memory.
func (b Buf) Bytes() []byte {
	return unsafe.Slice(b.Ptr, b.Len)
}

// String copies the viewed region into a string.
func (b Buf) String() string {
	return string(b.Bytes())
}

// Cursor returns a read cursor positioned at the start of the view.
func (b Buf) Cursor() Cursor {
	return Cursor{Ptr: b.Ptr, Len: b.Len}
}

// Cursor is a movable read position within a Buf: the current pointer and
// the number of unconsumed bytes. Len only ever decreases and Ptr only ever
// moves forward, both through the Advance methods. The zero value is the
// terminal empty cursor.
//
// Cursor carries no synchronization. Concurrent mutation of one cursor from
// multiple goroutines is a caller error.
type Cursor struct {
	Ptr *byte
	Len uintptr
}

// Bytes returns the unconsumed region as a byte slice aliasing the same
// memory.
func (c Cursor) Bytes() []byte {
	return unsafe.Slice(c.Ptr, c.Len)
}

// String copies the unconsumed region into a string.
func (c Cursor) String() string {
	return string(c.Bytes())
}

// Advance consumes the next n bytes.
//
// If the cursor has at least n bytes remaining, Advance moves the cursor
// forward by n and returns a cursor over exactly the n consumed bytes.
// Otherwise it returns the zero cursor and leaves the receiver unmodified.
// Lengths above half the uintptr range, on either side, also fail.
//
// The bounds check is an ordinary branch. Use Advance when n is a trusted,
// program-controlled value; use [Cursor.AdvanceNospec] when n comes from
// untrusted input.
func (c *Cursor) Advance(n uintptr) Cursor {
	if c.Len > maxLen || n > maxLen || n > c.Len {
		return Cursor{}
	}

	rv := Cursor{Ptr: c.Ptr, Len: n}
	c.Ptr = (*byte)(unsafe.Add(unsafe.Pointer(c.Ptr), n))
	c.Len -= n
	return rv
}

// AdvanceNospec consumes the next n bytes with the same observable contract
// as [Cursor.Advance], hardened against speculative out-of-bounds reads.
//
// The range check still branches (failure has to be reported somehow), but
// the accepted n is then clamped through [NospecIndex] before any pointer
// arithmetic. Even on a mispredicted path past the check, the pointer can
// only land inside the cursor's remaining region.
//
// Use this variant whenever n derives from untrusted data, such as a length
// field parsed off the wire.
func (c *Cursor) AdvanceNospec(n uintptr) Cursor {
	if c.Len > maxLen || n > maxLen || n > c.Len {
		return Cursor{}
	}

	// Clamp after the branch, not instead of it: clamping first would turn
	// an out-of-bounds request into a silent zero-length read. The +1 bound
	// cannot overflow because c.Len <= maxLen here.
	n = NospecIndex(n, c.Len+1)

	rv := Cursor{Ptr: c.Ptr, Len: n}
	c.Ptr = (*byte)(unsafe.Add(unsafe.Pointer(c.Ptr), n))
	c.Len -= n
	return rv
}
