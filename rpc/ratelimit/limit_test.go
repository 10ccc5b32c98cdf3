// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "limit %d", i)
	}

	// zero burst can never be satisfied
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(rate.NewLimiter(1, 0)), "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 50, 100), "in range")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, -1, 100), "negative count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 101, 100), "count too large")

	// burst smaller than the count
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(rate.NewLimiter(10, 5), 6, 100), "burst exceeded")
}
