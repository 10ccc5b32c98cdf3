// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/rpc/balances"
)

// Mint - credit amount to owner
func (c *Client) Mint(owner account.Account, amount uint64) (*balances.BalanceReply, error) {
	arguments := balances.MintArguments{
		Owner:  &owner,
		Amount: amount,
	}
	reply := &balances.BalanceReply{}
	err := c.call("Balances.Mint", "Mint", arguments, reply)
	return reply, err
}

// Transfer - send amount from the caller to another account
func (c *Client) Transfer(caller string, to account.Account, amount uint64) (*balances.BalanceReply, error) {
	arguments := balances.TransferArguments{
		Caller: caller,
		To:     &to,
		Amount: amount,
	}
	reply := &balances.BalanceReply{}
	err := c.call("Balances.Transfer", "Transfer", arguments, reply)
	return reply, err
}

// Burn - destroy amount held by the caller
func (c *Client) Burn(caller string, amount uint64) (*balances.BalanceReply, error) {
	arguments := balances.BurnArguments{
		Caller: caller,
		Amount: amount,
	}
	reply := &balances.BalanceReply{}
	err := c.call("Balances.Burn", "Burn", arguments, reply)
	return reply, err
}

// Balance - current balance of owner
func (c *Client) Balance(owner account.Account) (*balances.BalanceReply, error) {
	arguments := balances.GetArguments{
		Owner: &owner,
	}
	reply := &balances.BalanceReply{}
	err := c.call("Balances.Get", "Balance", arguments, reply)
	return reply, err
}

// Supply - total supply
func (c *Client) Supply() (*balances.SupplyReply, error) {
	reply := &balances.SupplyReply{}
	err := c.call("Balances.Supply", "Supply", balances.SupplyArguments{}, reply)
	return reply, err
}

// List - one page of balances after start
func (c *Client) List(start *account.Account, count int) (*balances.ListReply, error) {
	arguments := balances.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &balances.ListReply{}
	err := c.call("Balances.List", "List", arguments, reply)
	return reply, err
}

// Audit - compare balances with total supply
func (c *Client) Audit() (*balances.AuditReply, error) {
	reply := &balances.AuditReply{}
	err := c.call("Balances.Audit", "Audit", balances.AuditArguments{}, reply)
	return reply, err
}
