// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"

	"github.com/bitmark-inc/ledgerd/ledger"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Bus - event queue
type Bus struct {
	queue   chan ledger.Event
	dropped uint64
}

// New - create a bus holding up to size events, zero for the default
func New(size int) *Bus {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Bus{
		queue: make(chan ledger.Event, size),
	}
}

// Deliver - queue an event without waiting
func (b *Bus) Deliver(event ledger.Event) {
	select {
	case b.queue <- event:
	default:
		atomic.AddUint64(&b.dropped, 1)
	}
}

// Chan - channel to read from
func (b *Bus) Chan() <-chan ledger.Event {
	return b.queue
}

// Dropped - number of events discarded because the queue was full
func (b *Bus) Dropped() uint64 {
	return atomic.LoadUint64(&b.dropped)
}
