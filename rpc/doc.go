// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring ledgerd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Balances.Mint  Balances.Transfer  Balances.Burn
//   Balances.Get   Balances.Supply    Balances.List   Balances.Audit
//   Assets.Create  Assets.Transfer    Assets.Get      Assets.Owned
//   Node.Info
package rpc
