// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memx

// MemoryOrder selects the visibility constraint attached to an atomic
// operation. The five values form a partial strength order:
//
//	OrderRelaxed < OrderAcquire, OrderRelease < OrderAcqRel < OrderSeqCst
//
// with OrderAcquire and OrderRelease incomparable to each other.
//
// Every atomic operation in this package takes its ordering as an explicit
// argument; there is no implicit default. Passing a value outside the five
// constants, or an ordering that is meaningless for the operation (release
// on a load, acquire on a store), is a caller contract violation and panics.
type MemoryOrder uint32

const (
	// OrderRelaxed guarantees atomicity only. No visibility ordering is
	// established with respect to other memory operations.
	OrderRelaxed MemoryOrder = iota
	// OrderAcquire makes writes published by a matching release operation
	// on the same cell visible to this thread. Valid for loads and
	// read-modify-write operations.
	OrderAcquire
	// OrderRelease publishes this thread's prior writes to a subsequent
	// acquire operation on the same cell. Valid for stores and
	// read-modify-write operations.
	OrderRelease
	// OrderAcqRel combines acquire and release semantics. Valid for
	// read-modify-write operations.
	OrderAcqRel
	// OrderSeqCst additionally places the operation in the single global
	// total order shared by all seq-cst operations.
	OrderSeqCst
)

// String returns the ordering name, or "invalid" for unmapped values.
func (o MemoryOrder) String() string {
	switch o {
	case OrderRelaxed:
		return "relaxed"
	case OrderAcquire:
		return "acquire"
	case OrderRelease:
		return "release"
	case OrderAcqRel:
		return "acq_rel"
	case OrderSeqCst:
		return "seq_cst"
	default:
		return "invalid"
	}
}

// Order translation.
//
// The sync/atomic backend provides sequentially consistent semantics for
// every operation, so every recognized ordering maps onto the one seq-cst
// backend and translation degenerates to validation. The checks stay
// mandatory so that ordering misuse fails identically here and on backends
// with genuinely weaker operations.

// checkLoadOrder rejects orderings that are meaningless for a pure load.
func checkLoadOrder(o MemoryOrder) {
	switch o {
	case OrderRelaxed, OrderAcquire, OrderSeqCst:
	case OrderRelease, OrderAcqRel:
		panic("memx: " + o.String() + " ordering invalid for load")
	default:
		panic("memx: invalid memory order")
	}
}

// checkStoreOrder rejects orderings that are meaningless for a pure store.
func checkStoreOrder(o MemoryOrder) {
	switch o {
	case OrderRelaxed, OrderRelease, OrderSeqCst:
	case OrderAcquire, OrderAcqRel:
		panic("memx: " + o.String() + " ordering invalid for store")
	default:
		panic("memx: invalid memory order")
	}
}

// checkRMWOrder accepts any of the five orderings for read-modify-write
// operations and fences.
func checkRMWOrder(o MemoryOrder) {
	switch o {
	case OrderRelaxed, OrderAcquire, OrderRelease, OrderAcqRel, OrderSeqCst:
	default:
		panic("memx: invalid memory order")
	}
}

// checkCompareExchangeOrders validates the (success, failure) ordering pair
// of a compare-exchange. The failure ordering must not be release or acq-rel
// (there is no write to publish on the failure path) and must be no stronger
// than the success ordering under the partial strength order.
func checkCompareExchangeOrders(success, failure MemoryOrder) {
	checkRMWOrder(success)
	switch failure {
	case OrderRelaxed, OrderAcquire, OrderSeqCst:
	case OrderRelease, OrderAcqRel:
		panic("memx: " + failure.String() + " ordering invalid for compare-exchange failure")
	default:
		panic("memx: invalid memory order")
	}
	if !noStrongerThan(failure, success) {
		panic("memx: compare-exchange failure ordering stronger than success ordering")
	}
}

// noStrongerThan reports whether a is no stronger than b under the partial
// strength order. Acquire and release are mutually incomparable, so neither
// is "no stronger" than the other.
func noStrongerThan(a, b MemoryOrder) bool {
	switch a {
	case OrderRelaxed:
		return true
	case OrderAcquire:
		return b == OrderAcquire || b == OrderAcqRel || b == OrderSeqCst
	case OrderRelease:
		return b == OrderRelease || b == OrderAcqRel || b == OrderSeqCst
	case OrderAcqRel:
		return b == OrderAcqRel || b == OrderSeqCst
	case OrderSeqCst:
		return b == OrderSeqCst
	default:
		panic("memx: invalid memory order")
	}
}
