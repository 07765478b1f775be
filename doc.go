// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memx provides two low-level primitives for lock-free and
// wire-parsing code: atomic cells with an explicit memory-ordering model,
// and non-owning byte views with bounds-checked, speculation-safe
// advancement.
//
// # Atomic Cells
//
// [Uintptr] holds a machine-word unsigned integer, [Pointer] holds an
// unsafe.Pointer. The two payloads are distinct types, so a cell carries
// exactly one logical type for its lifetime and arithmetic on a pointer
// payload is a compile error rather than a runtime hazard.
//
// Every operation names its ordering explicitly:
//
//	var refs memx.Uintptr
//	refs.Init(1)
//
//	refs.FetchAdd(1, memx.OrderRelaxed)              // retain
//	if refs.FetchSub(1, memx.OrderAcqRel) == 1 {     // release
//	    destroy()
//	}
//
// Init is the one non-atomic operation: it must run before the cell is
// shared, typically before the enclosing structure is published.
//
// # Memory Orderings
//
// [MemoryOrder] is a closed five-value enumeration:
//
//	OrderRelaxed   atomicity only, no visibility ordering
//	OrderAcquire   observe writes published by a matching release
//	OrderRelease   publish prior writes to a matching acquire
//	OrderAcqRel    both, for read-modify-write operations
//	OrderSeqCst    additionally joins the global seq-cst total order
//
// Orderings that are meaningless for an operation are caller errors and
// panic: release/acq-rel on a load, acquire/acq-rel on a store, and a
// compare-exchange failure ordering that is release, acq-rel, or stronger
// than the success ordering. The checks run on every backend even where the
// underlying operations are uniformly sequentially consistent, so misuse
// fails fast everywhere instead of only on weakly ordered hardware.
//
// # Compare-Exchange
//
// CompareExchange is a single-attempt strong CAS. On mismatch it writes the
// observed value back into *expected and returns false; retry loops belong
// to the caller:
//
//	old := counter.Load(memx.OrderRelaxed)
//	for !counter.CompareExchange(&old, old+1, memx.OrderAcqRel, memx.OrderRelaxed) {
//	    // old now holds the observed value; recompute and retry
//	}
//
// # Byte Views and Cursors
//
// [Buf] is a pointer+length view over caller-owned memory. [Cursor] is a
// read position over a Buf whose remaining length only ever decreases:
//
//	cur := memx.BufString("hello world").Cursor()
//	word := cur.Advance(5)   // "hello"; cur now holds " world"
//
// Advance either consumes exactly n bytes, returning a cursor over them, or
// fails by returning the zero cursor and leaving the receiver untouched.
// Neither Buf nor Cursor owns or copies memory; the caller keeps the
// backing storage alive and treats (nil, 0) as the empty value.
//
// # Speculation Safety
//
// [Cursor.AdvanceNospec] has the same observable contract as Advance but is
// hardened for untrusted lengths, such as a size field parsed from a
// network frame. A CPU that mispredicts the bounds check can transiently
// run the out-of-range path and leak out-of-bounds bytes through the cache.
// AdvanceNospec clamps the accepted length through [NospecIndex], a
// branchless masking routine, before any pointer arithmetic, so even the
// speculated path stays inside the cursor's remaining region:
//
//	// length came off the wire: never trust it
//	payload := cur.AdvanceNospec(uintptr(length))
//	if payload.Ptr == nil {
//	    return ErrTruncated
//	}
//
// [NospecIndex] itself clamps an index into [0, bound), returning 0 out of
// range, and is exported for callers that index into their own tables with
// untrusted values.
//
// # Splitting
//
// [SplitOnChar] and [SplitOnStr] tokenize a view on a delimiter without
// copying or allocating: tokens alias the input and fill a caller-provided
// slice. When the destination capacity runs out with tokens remaining they
// return [ErrMore], a semantic signal sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	out, err := memx.SplitOnChar(memx.BufString("a,b,c"), ',', make([]memx.Buf, 0, 8))
//	if memx.IsNonFailure(err) {
//	    // out holds the tokens that fit
//	}
//
// # Error Handling
//
// Bounds and overflow conditions in cursor advancement are reported through
// the returned value (the zero cursor), never through error or panic.
// Contract violations (invalid ordering values, malformed ordering pairs)
// panic, because they indicate a programming error rather than a runtime
// condition. No operation blocks, suspends, or allocates.
//
// # Thread Safety
//
// The atomic cells are the only concurrency-facing types: they are safe for
// unsynchronized sharing, and their whole contract is the visibility
// guarantee attached to each ordering. Buf and Cursor are plain values with
// no synchronization; concurrent mutation of one cursor is a caller error.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors. Tests
// additionally use [code.hybscloud.com/spin] for CPU pause loops.
package memx
