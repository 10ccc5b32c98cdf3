// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package safemath - checked unsigned arithmetic
//
// every quantity in the ledger passes through these functions so an
// out of range result is reported instead of wrapping
package safemath

import (
	"math"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Add - a + b or fault.ErrOverflow
func Add(a uint64, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fault.ErrOverflow
	}
	return a + b, nil
}

// Sub - a - b or fault.ErrUnderflow
func Sub(a uint64, b uint64) (uint64, error) {
	if b > a {
		return 0, fault.ErrUnderflow
	}
	return a - b, nil
}

// Increment - n + 1 or fault.ErrOverflow
func Increment(n uint64) (uint64, error) {
	return Add(n, 1)
}
