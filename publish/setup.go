// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed ledger events over ZeroMQ
package publish

import (
	"sync"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start broadcasting events read from queue
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration, queue <-chan ledger.Event) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: publishing disabled")
		globalData.background = background.Start(background.Processes{drain{queue}}, nil)
		globalData.initialised = true
		return nil
	}

	err := zmqutil.StartAuthentication()
	if nil != err {
		globalData.log.Errorf("zmq authentication error: %s", err)
		return err
	}

	privateKey, private, err := zmqutil.ReadKeyFile(configuration.PrivateKey)
	if nil == err && !private {
		err = fault.ErrInvalidPrivateKeyFile
	}
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, private, err := zmqutil.ReadKeyFile(configuration.PublicKey)
	if nil == err && private {
		err = fault.ErrInvalidPublicKeyFile
	}
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	globalData.log.Tracef("public key: %x", publicKey)

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, queue); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// keeps the queue empty when nothing is broadcast
type drain struct {
	queue <-chan ledger.Event
}

func (d drain) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-d.queue:
		}
	}
}
