// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balances - RPC handlers for the fungible balance ledger
package balances

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	maximumBalances   = 100
	rateLimitBalances = 200
	rateBurstBalances = 100
)

// Balances - type for the RPC
type Balances struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Ledger        *ledger.Service
	Authenticator ledger.Authenticator
}

// New - create the balances handler
func New(log *logger.L, service *ledger.Service, authenticator ledger.Authenticator) *Balances {
	return &Balances{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitBalances, rateBurstBalances),
		Ledger:        service,
		Authenticator: authenticator,
	}
}

// Balance mint
// ------------

// MintArguments - arguments for RPC
type MintArguments struct {
	Owner  *account.Account `json:"owner"`
	Amount uint64           `json:"amount,string"`
}

// BalanceReply - an account's balance after an operation
type BalanceReply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance,string"`
}

// Mint - credit new value to an account
func (b *Balances) Mint(arguments *MintArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	b.Log.Infof("Balances.Mint: %s  amount: %d", arguments.Owner, arguments.Amount)

	if err := b.Ledger.Mint(*arguments.Owner, arguments.Amount); nil != err {
		return err
	}

	reply.Account = arguments.Owner
	reply.Balance = b.Ledger.BalanceOf(*arguments.Owner)
	return nil
}

// Balance transfer
// ----------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller string           `json:"caller"`
	To     *account.Account `json:"to"`
	Amount uint64           `json:"amount,string"`
}

// Transfer - move value from the caller to another account
func (b *Balances) Transfer(arguments *TransferArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.To {
		return fault.ErrMissingParameters
	}

	from, err := b.Authenticator.Authenticate(arguments.Caller)
	if nil != err {
		return err
	}

	b.Log.Infof("Balances.Transfer: %s  to: %s  amount: %d", from, arguments.To, arguments.Amount)

	if err := b.Ledger.TransferBalance(from, *arguments.To, arguments.Amount); nil != err {
		return err
	}

	reply.Account = &from
	reply.Balance = b.Ledger.BalanceOf(from)
	return nil
}

// Balance burn
// ------------

// BurnArguments - arguments for RPC
type BurnArguments struct {
	Caller string `json:"caller"`
	Amount uint64 `json:"amount,string"`
}

// Burn - destroy value held by the caller
func (b *Balances) Burn(arguments *BurnArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	owner, err := b.Authenticator.Authenticate(arguments.Caller)
	if nil != err {
		return err
	}

	b.Log.Infof("Balances.Burn: %s  amount: %d", owner, arguments.Amount)

	if err := b.Ledger.Burn(owner, arguments.Amount); nil != err {
		return err
	}

	reply.Account = &owner
	reply.Balance = b.Ledger.BalanceOf(owner)
	return nil
}

// Balance get
// -----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Owner *account.Account `json:"owner"`
}

// Get - balance of one account, zero if absent
func (b *Balances) Get(arguments *GetArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	reply.Account = arguments.Owner
	reply.Balance = b.Ledger.BalanceOf(*arguments.Owner)
	return nil
}

// Total supply
// ------------

// SupplyArguments - empty arguments for RPC
type SupplyArguments struct{}

// SupplyReply - result from RPC
type SupplyReply struct {
	TotalSupply uint64 `json:"totalSupply,string"`
}

// Supply - total of all balances
func (b *Balances) Supply(_ *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	reply.TotalSupply = b.Ledger.TotalSupply()
	return nil
}

// Balance list
// ------------

// ListArguments - arguments for RPC
type ListArguments struct {
	Start *account.Account `json:"start"` // exclusive, nil for the first page
	Count int              `json:"count"`
}

// ListReply - result from RPC
type ListReply struct {
	Balances []balance.Entry `json:"balances"`
	Next     *account.Account `json:"next,omitempty"` // Start value for the next call
}

// List - page through balances in account order
func (b *Balances) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(b.Limiter, arguments.Count, maximumBalances); nil != err {
		return err
	}

	entries, err := b.Ledger.Balances(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Balances = entries
	if len(entries) == arguments.Count {
		next := entries[len(entries)-1].Account
		reply.Next = &next
	}
	return nil
}

// Supply audit
// ------------

// AuditArguments - empty arguments for RPC
type AuditArguments struct{}

// AuditReply - result from RPC
type AuditReply struct {
	Sum         uint64 `json:"sum,string"`
	TotalSupply uint64 `json:"totalSupply,string"`
	Consistent  bool   `json:"consistent"`
}

// Audit - compare the sum of balances with the total supply
//
// a mismatch is reported in the reply rather than as an error
func (b *Balances) Audit(_ *AuditArguments, reply *AuditReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	sum, supply, err := b.Ledger.Audit()
	if nil != err && fault.ErrSupplyMismatch != err {
		return err
	}

	reply.Sum = sum
	reply.TotalSupply = supply
	reply.Consistent = nil == err
	return nil
}
