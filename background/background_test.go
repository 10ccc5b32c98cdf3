// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/background"
)

type ticker struct {
	ticks   int32
	stopped int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddInt32(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.stopped, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.stopped), "first process not stopped")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.stopped), "second process not stopped")
	assert.True(t, atomic.LoadInt32(&proc1.ticks) > 0, "first process did not run")
	assert.True(t, atomic.LoadInt32(&proc2.ticks) > 0, "second process did not run")

	// second stop must not panic or block
	p.Stop()
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
