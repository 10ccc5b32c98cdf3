// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - concurrent connection counting
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value that is safe to update from many goroutines
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// IncrementIfBelow - add 1 only if the current value is below limit
//
// returns false, leaving the counter unchanged, when the limit is reached
func (ic *Counter) IncrementIfBelow(limit uint64) bool {
	for {
		current := atomic.LoadUint64((*uint64)(ic))
		if current >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, current+1) {
			return true
		}
	}
}

// Decrement - subtract 1 from a counter, returns new value
//
// a zero counter stays at zero
func (ic *Counter) Decrement() uint64 {
	for {
		current := atomic.LoadUint64((*uint64)(ic))
		if 0 == current {
			return 0
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), current, current-1) {
			return current - 1
		}
	}
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
