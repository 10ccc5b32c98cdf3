// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"
)

// SystemClock - UTC wall clock that never moves backwards
type SystemClock struct {
	sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewSystemClock - clock reading the system time
func NewSystemClock() *SystemClock {
	return &SystemClock{
		now: time.Now,
	}
}

// Now - current time, never earlier than a previous result
func (c *SystemClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()

	now := c.now().UTC()
	if now.Before(c.last) {
		return c.last
	}
	c.last = now
	return now
}
