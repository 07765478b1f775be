// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

import (
	"sync/atomic"
	"unsafe"
)

// noCopy triggers go vet's copylocks check when a cell is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Uintptr is a machine-word unsigned atomic cell.
//
// Every operation takes an explicit [MemoryOrder]. The arithmetic and
// bitwise fetch operations exist only on Uintptr; pointer payloads use the
// separate [Pointer] type, so a cell holds exactly one logical type for its
// whole lifetime.
//
// The zero value holds 0 but [Uintptr.Init] should still run before the
// cell is shared, to make the initialization point explicit.
type Uintptr struct {
	_ noCopy
	v uintptr
}

// Init sets the initial value with a plain, non-atomic store.
// It must happen-before any concurrent access to the cell, typically by
// running before the enclosing structure is published to other goroutines.
func (c *Uintptr) Init(v uintptr) {
	c.v = v
}

// Load atomically reads the cell.
// order must be OrderRelaxed, OrderAcquire, or OrderSeqCst.
func (c *Uintptr) Load(order MemoryOrder) uintptr {
	checkLoadOrder(order)
	return atomic.LoadUintptr(&c.v)
}

// Store atomically writes v into the cell.
// order must be OrderRelaxed, OrderRelease, or OrderSeqCst.
func (c *Uintptr) Store(v uintptr, order MemoryOrder) {
	checkStoreOrder(order)
	atomic.StoreUintptr(&c.v, v)
}

// Swap atomically replaces the cell with v and returns the previous value.
func (c *Uintptr) Swap(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	return atomic.SwapUintptr(&c.v, v)
}

// CompareExchange atomically compares the cell against *expected. On match
// it stores desired and returns true. On mismatch it writes the observed
// value into *expected and returns false.
//
// This is a single attempt; retry loops are the caller's responsibility.
// failure must not be OrderRelease or OrderAcqRel and must be no stronger
// than success.
func (c *Uintptr) CompareExchange(expected *uintptr, desired uintptr, success, failure MemoryOrder) bool {
	checkCompareExchangeOrders(success, failure)
	if atomic.CompareAndSwapUintptr(&c.v, *expected, desired) {
		return true
	}
	// The reload is a separate linearization point from the failed swap;
	// it observes a value that was current at some instant after it.
	*expected = atomic.LoadUintptr(&c.v)
	return false
}

// FetchAdd atomically adds v to the cell and returns the previous value.
func (c *Uintptr) FetchAdd(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	return atomic.AddUintptr(&c.v, v) - v
}

// FetchSub atomically subtracts v from the cell and returns the previous
// value.
func (c *Uintptr) FetchSub(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	return atomic.AddUintptr(&c.v, -v) + v
}

// FetchOr atomically ORs v into the cell and returns the previous value.
func (c *Uintptr) FetchOr(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	return atomic.OrUintptr(&c.v, v)
}

// FetchAnd atomically ANDs v into the cell and returns the previous value.
func (c *Uintptr) FetchAnd(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	return atomic.AndUintptr(&c.v, v)
}

// FetchXor atomically XORs v into the cell and returns the previous value.
// sync/atomic has no XOR primitive, so this retries a compare-and-swap
// internally; the operation is still atomic as observed by other threads.
func (c *Uintptr) FetchXor(v uintptr, order MemoryOrder) uintptr {
	checkRMWOrder(order)
	for {
		old := atomic.LoadUintptr(&c.v)
		if atomic.CompareAndSwapUintptr(&c.v, old, old^v) {
			return old
		}
	}
}

// Pointer is a pointer-sized atomic cell.
//
// Pointer supports the load/store/exchange family only; arithmetic on a
// pointer payload is a type error by construction.
type Pointer struct {
	_ noCopy
	p unsafe.Pointer
}

// Init sets the initial value with a plain, non-atomic store.
// It must happen-before any concurrent access to the cell.
func (c *Pointer) Init(p unsafe.Pointer) {
	c.p = p
}

// Load atomically reads the cell.
// order must be OrderRelaxed, OrderAcquire, or OrderSeqCst.
func (c *Pointer) Load(order MemoryOrder) unsafe.Pointer {
	checkLoadOrder(order)
	return atomic.LoadPointer(&c.p)
}

// Store atomically writes p into the cell.
// order must be OrderRelaxed, OrderRelease, or OrderSeqCst.
func (c *Pointer) Store(p unsafe.Pointer, order MemoryOrder) {
	checkStoreOrder(order)
	atomic.StorePointer(&c.p, p)
}

// Swap atomically replaces the cell with p and returns the previous value.
func (c *Pointer) Swap(p unsafe.Pointer, order MemoryOrder) unsafe.Pointer {
	checkRMWOrder(order)
	return atomic.SwapPointer(&c.p, p)
}

// CompareExchange atomically compares the cell against *expected. On match
// it stores desired and returns true. On mismatch it writes the observed
// value into *expected and returns false.
//
// Single attempt; same ordering-pair contract as [Uintptr.CompareExchange].
func (c *Pointer) CompareExchange(expected *unsafe.Pointer, desired unsafe.Pointer, success, failure MemoryOrder) bool {
	checkCompareExchangeOrders(success, failure)
	if atomic.CompareAndSwapPointer(&c.p, *expected, desired) {
		return true
	}
	*expected = atomic.LoadPointer(&c.p)
	return false
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// fenceCell is the private cell Fence operates on. Padded so the fence
// never contends with neighboring package data.
var fenceCell struct {
	_ pad
	v uintptr
	_ pad
}

// Fence is a standalone ordering barrier not tied to any cell. It
// establishes the visibility guarantees of an atomic operation with the
// given ordering without reading or writing caller data.
//
// OrderRelaxed is a no-op. Every stronger ordering performs a full barrier,
// the only fence the sync/atomic backend can express.
func Fence(order MemoryOrder) {
	checkRMWOrder(order)
	if order == OrderRelaxed {
		return
	}
	atomic.AddUintptr(&fenceCell.v, 0)
}
