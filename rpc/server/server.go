// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the RPC handlers
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/assets"
	"github.com/bitmark-inc/ledgerd/rpc/balances"
	"github.com/bitmark-inc/ledgerd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every handler registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, service *ledger.Service, authenticator ledger.Authenticator) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(balances.New(log, service, authenticator))
	_ = server.Register(assets.New(log, service, authenticator))
	_ = server.Register(node.New(log, service, start, version, rpcCount))

	return server
}
