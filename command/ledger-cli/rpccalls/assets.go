// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/rpc/assets"
)

// CreateAsset - new asset owned by the caller
func (c *Client) CreateAsset(caller string, price uint64) (*assets.AssetReply, error) {
	arguments := assets.CreateArguments{
		Caller: caller,
		Price:  price,
	}
	reply := &assets.AssetReply{}
	err := c.call("Assets.Create", "Create", arguments, reply)
	return reply, err
}

// TransferAsset - give an asset to another account
func (c *Client) TransferAsset(caller string, to account.Account, id asset.Identifier) (*assets.AssetReply, error) {
	arguments := assets.TransferArguments{
		Caller: caller,
		To:     &to,
		Id:     id,
	}
	reply := &assets.AssetReply{}
	err := c.call("Assets.Transfer", "Transfer Asset", arguments, reply)
	return reply, err
}

// Asset - fetch one record
func (c *Client) Asset(id asset.Identifier) (*assets.AssetReply, error) {
	arguments := assets.GetArguments{
		Id: id,
	}
	reply := &assets.AssetReply{}
	err := c.call("Assets.Get", "Asset", arguments, reply)
	return reply, err
}

// Owned - all assets of owner
func (c *Client) Owned(owner account.Account) (*assets.OwnedReply, error) {
	arguments := assets.OwnedArguments{
		Owner: &owner,
	}
	reply := &assets.OwnedReply{}
	err := c.call("Assets.Owned", "Owned", arguments, reply)
	return reply, err
}
