// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC handler describing the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  *ledger.Service
	counter *counter.Counter
}

// New - create the node handler
func New(log *logger.L, service *ledger.Service, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  service,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Ledger      ledger.Info `json:"ledger"`
	Version     string      `json:"version"`
	Uptime      string      `json:"uptime"`
	RPCs        uint64      `json:"rpcs"`
	TotalSupply uint64      `json:"totalSupply,string"`
	Assets      uint64      `json:"assets,string"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Ledger = node.Ledger.Info()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.TotalSupply = node.Ledger.TotalSupply()
	reply.Assets = node.Ledger.Nonce()
	return nil
}
