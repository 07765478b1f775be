// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/memx"
)

// =============================================================================
// Uintptr Cell - Basic Operations
// =============================================================================

var loadOrders = []memx.MemoryOrder{memx.OrderRelaxed, memx.OrderAcquire, memx.OrderSeqCst}
var storeOrders = []memx.MemoryOrder{memx.OrderRelaxed, memx.OrderRelease, memx.OrderSeqCst}
var rmwOrders = []memx.MemoryOrder{
	memx.OrderRelaxed, memx.OrderAcquire, memx.OrderRelease, memx.OrderAcqRel, memx.OrderSeqCst,
}

// TestUintptrInitLoad verifies Load observes the Init value under every
// legal load ordering.
func TestUintptrInitLoad(t *testing.T) {
	for _, order := range loadOrders {
		var c memx.Uintptr
		c.Init(42)
		if got := c.Load(order); got != 42 {
			t.Fatalf("Load(%v) after Init(42): got %d, want 42", order, got)
		}
	}
}

// TestUintptrStoreLoad verifies Store/Load round trips across every legal
// ordering combination.
func TestUintptrStoreLoad(t *testing.T) {
	for _, so := range storeOrders {
		for _, lo := range loadOrders {
			var c memx.Uintptr
			c.Init(0)
			c.Store(7, so)
			if got := c.Load(lo); got != 7 {
				t.Fatalf("Store(7, %v) then Load(%v): got %d, want 7", so, lo, got)
			}
		}
	}
}

// TestUintptrSwap verifies Swap returns the previous value and installs the
// new one.
func TestUintptrSwap(t *testing.T) {
	for _, order := range rmwOrders {
		var c memx.Uintptr
		c.Init(1)
		if got := c.Swap(2, order); got != 1 {
			t.Fatalf("Swap(2, %v): got %d, want 1", order, got)
		}
		if got := c.Load(memx.OrderSeqCst); got != 2 {
			t.Fatalf("Load after Swap(2, %v): got %d, want 2", order, got)
		}
	}
}

// TestUintptrCompareExchangeSuccess verifies a matching expected value
// installs desired, returns true, and leaves expected unchanged.
func TestUintptrCompareExchangeSuccess(t *testing.T) {
	var c memx.Uintptr
	c.Init(10)

	expected := uintptr(10)
	if !c.CompareExchange(&expected, 20, memx.OrderSeqCst, memx.OrderRelaxed) {
		t.Fatal("CompareExchange with matching expected: got false, want true")
	}
	if expected != 10 {
		t.Fatalf("expected after success: got %d, want 10", expected)
	}
	if got := c.Load(memx.OrderSeqCst); got != 20 {
		t.Fatalf("Load after success: got %d, want 20", got)
	}
}

// TestUintptrCompareExchangeFailure verifies a mismatch returns false,
// leaves the cell untouched, and writes the observed value into expected.
func TestUintptrCompareExchangeFailure(t *testing.T) {
	var c memx.Uintptr
	c.Init(10)

	expected := uintptr(99)
	if c.CompareExchange(&expected, 20, memx.OrderSeqCst, memx.OrderRelaxed) {
		t.Fatal("CompareExchange with mismatched expected: got true, want false")
	}
	if expected != 10 {
		t.Fatalf("expected after failure: got %d, want 10 (observed value)", expected)
	}
	if got := c.Load(memx.OrderSeqCst); got != 10 {
		t.Fatalf("Load after failure: got %d, want 10 (unchanged)", got)
	}
}

// TestUintptrCompareExchangeRetryLoop verifies the single-attempt CAS
// composes into the canonical caller-side retry loop.
func TestUintptrCompareExchangeRetryLoop(t *testing.T) {
	var c memx.Uintptr
	c.Init(0)

	old := c.Load(memx.OrderRelaxed)
	for i := 0; i < 100; i++ {
		for !c.CompareExchange(&old, old+1, memx.OrderAcqRel, memx.OrderRelaxed) {
		}
		old++
	}
	if got := c.Load(memx.OrderSeqCst); got != 100 {
		t.Fatalf("after 100 CAS increments: got %d, want 100", got)
	}
}

// =============================================================================
// Uintptr Cell - Fetch Operations
// =============================================================================

// TestUintptrFetchAdd verifies FetchAdd returns the pre-operation value and
// applies modular addition.
func TestUintptrFetchAdd(t *testing.T) {
	for _, order := range rmwOrders {
		var c memx.Uintptr
		c.Init(5)
		if got := c.FetchAdd(3, order); got != 5 {
			t.Fatalf("FetchAdd(3, %v): got %d, want 5", order, got)
		}
		if got := c.Load(memx.OrderSeqCst); got != 8 {
			t.Fatalf("Load after FetchAdd: got %d, want 8", got)
		}
	}
}

// TestUintptrFetchAddWraps verifies addition wraps modulo the word size.
func TestUintptrFetchAddWraps(t *testing.T) {
	var c memx.Uintptr
	c.Init(^uintptr(0))
	if got := c.FetchAdd(1, memx.OrderSeqCst); got != ^uintptr(0) {
		t.Fatalf("FetchAdd(1) at max: got %d, want %d", got, ^uintptr(0))
	}
	if got := c.Load(memx.OrderSeqCst); got != 0 {
		t.Fatalf("Load after wrap: got %d, want 0", got)
	}
}

// TestUintptrFetchSub verifies FetchSub returns the pre-operation value.
func TestUintptrFetchSub(t *testing.T) {
	var c memx.Uintptr
	c.Init(8)
	if got := c.FetchSub(3, memx.OrderSeqCst); got != 8 {
		t.Fatalf("FetchSub(3): got %d, want 8", got)
	}
	if got := c.Load(memx.OrderSeqCst); got != 5 {
		t.Fatalf("Load after FetchSub: got %d, want 5", got)
	}

	// Subtraction below zero wraps.
	c.Init(0)
	if got := c.FetchSub(1, memx.OrderSeqCst); got != 0 {
		t.Fatalf("FetchSub(1) at zero: got %d, want 0", got)
	}
	if got := c.Load(memx.OrderSeqCst); got != ^uintptr(0) {
		t.Fatalf("Load after wrap: got %d, want %d", got, ^uintptr(0))
	}
}

// TestUintptrFetchBitwise verifies the or/and/xor family returns previous
// values and applies the bitwise operation.
func TestUintptrFetchBitwise(t *testing.T) {
	var c memx.Uintptr

	c.Init(0b1100)
	if got := c.FetchOr(0b0110, memx.OrderSeqCst); got != 0b1100 {
		t.Fatalf("FetchOr: got %#b, want 0b1100", got)
	}
	if got := c.Load(memx.OrderSeqCst); got != 0b1110 {
		t.Fatalf("Load after FetchOr: got %#b, want 0b1110", got)
	}

	c.Init(0b1100)
	if got := c.FetchAnd(0b0110, memx.OrderSeqCst); got != 0b1100 {
		t.Fatalf("FetchAnd: got %#b, want 0b1100", got)
	}
	if got := c.Load(memx.OrderSeqCst); got != 0b0100 {
		t.Fatalf("Load after FetchAnd: got %#b, want 0b0100", got)
	}

	c.Init(0b1100)
	if got := c.FetchXor(0b0110, memx.OrderSeqCst); got != 0b1100 {
		t.Fatalf("FetchXor: got %#b, want 0b1100", got)
	}
	if got := c.Load(memx.OrderSeqCst); got != 0b1010 {
		t.Fatalf("Load after FetchXor: got %#b, want 0b1010", got)
	}
}

// =============================================================================
// Pointer Cell
// =============================================================================

// TestPointerInitLoadStore verifies pointer round trips under every legal
// ordering.
func TestPointerInitLoadStore(t *testing.T) {
	a, b := new(int), new(int)

	var c memx.Pointer
	c.Init(unsafe.Pointer(a))
	for _, lo := range loadOrders {
		if got := c.Load(lo); got != unsafe.Pointer(a) {
			t.Fatalf("Load(%v): got %p, want %p", lo, got, a)
		}
	}

	for _, so := range storeOrders {
		c.Store(unsafe.Pointer(b), so)
		if got := c.Load(memx.OrderSeqCst); got != unsafe.Pointer(b) {
			t.Fatalf("Load after Store(%v): got %p, want %p", so, got, b)
		}
	}
}

// TestPointerSwap verifies Swap returns the previous pointer.
func TestPointerSwap(t *testing.T) {
	a, b := new(int), new(int)

	var c memx.Pointer
	c.Init(unsafe.Pointer(a))
	if got := c.Swap(unsafe.Pointer(b), memx.OrderAcqRel); got != unsafe.Pointer(a) {
		t.Fatalf("Swap: got %p, want %p", got, a)
	}
	if got := c.Load(memx.OrderSeqCst); got != unsafe.Pointer(b) {
		t.Fatalf("Load after Swap: got %p, want %p", got, b)
	}
}

// TestPointerCompareExchange verifies both CAS outcomes for pointer cells.
func TestPointerCompareExchange(t *testing.T) {
	a, b := new(int), new(int)

	var c memx.Pointer
	c.Init(unsafe.Pointer(a))

	expected := unsafe.Pointer(a)
	if !c.CompareExchange(&expected, unsafe.Pointer(b), memx.OrderSeqCst, memx.OrderRelaxed) {
		t.Fatal("CompareExchange with matching expected: got false, want true")
	}
	if got := c.Load(memx.OrderSeqCst); got != unsafe.Pointer(b) {
		t.Fatalf("Load after success: got %p, want %p", got, b)
	}

	expected = unsafe.Pointer(a)
	if c.CompareExchange(&expected, nil, memx.OrderSeqCst, memx.OrderRelaxed) {
		t.Fatal("CompareExchange with stale expected: got true, want false")
	}
	if expected != unsafe.Pointer(b) {
		t.Fatalf("expected after failure: got %p, want %p (observed value)", expected, b)
	}
}

// TestPointerNil verifies nil is an ordinary payload.
func TestPointerNil(t *testing.T) {
	var c memx.Pointer
	c.Init(nil)
	if got := c.Load(memx.OrderAcquire); got != nil {
		t.Fatalf("Load: got %p, want nil", got)
	}
	a := new(int)
	if got := c.Swap(unsafe.Pointer(a), memx.OrderAcqRel); got != nil {
		t.Fatalf("Swap from nil: got %p, want nil", got)
	}
}

// =============================================================================
// Fence
// =============================================================================

// TestFenceAllOrders verifies Fence accepts every ordering; the visibility
// effect itself is exercised by the stress tests.
func TestFenceAllOrders(t *testing.T) {
	for _, order := range rmwOrders {
		memx.Fence(order)
	}
}
