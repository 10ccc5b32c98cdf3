// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package safemath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/safemath"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a        uint64
		b        uint64
		expected uint64
		err      error
	}{
		{0, 0, 0, nil},
		{5, 3, 8, nil},
		{math.MaxUint64 - 1, 1, math.MaxUint64, nil},
		{math.MaxUint64, 0, math.MaxUint64, nil},
		{math.MaxUint64, 1, 0, fault.ErrOverflow},
		{1, math.MaxUint64, 0, fault.ErrOverflow},
		{math.MaxUint64, math.MaxUint64, 0, fault.ErrOverflow},
	}

	for i, item := range tests {
		actual, err := safemath.Add(item.a, item.b)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong result", i)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a        uint64
		b        uint64
		expected uint64
		err      error
	}{
		{0, 0, 0, nil},
		{10, 4, 6, nil},
		{4, 4, 0, nil},
		{math.MaxUint64, math.MaxUint64, 0, nil},
		{3, 5, 0, fault.ErrUnderflow},
		{0, 1, 0, fault.ErrUnderflow},
	}

	for i, item := range tests {
		actual, err := safemath.Sub(item.a, item.b)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong result", i)
	}
}

func TestIncrement(t *testing.T) {
	n, err := safemath.Increment(41)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint64(42), n, "wrong result")

	_, err = safemath.Increment(math.MaxUint64)
	assert.Equal(t, fault.ErrOverflow, err, "wrong error")
}
