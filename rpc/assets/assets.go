// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assets - RPC handlers for the asset registry
package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Assets - type for the RPC
type Assets struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Ledger        *ledger.Service
	Authenticator ledger.Authenticator
}

// New - create the assets handler
func New(log *logger.L, service *ledger.Service, authenticator ledger.Authenticator) *Assets {
	return &Assets{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Ledger:        service,
		Authenticator: authenticator,
	}
}

// AssetReply - a single asset record
type AssetReply struct {
	Asset asset.Record `json:"asset"`
}

// Asset create
// ------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller string `json:"caller"`
	Price  uint64 `json:"price,string"`
}

// Create - register a new asset owned by the caller
func (a *Assets) Create(arguments *CreateArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	owner, err := a.Authenticator.Authenticate(arguments.Caller)
	if nil != err {
		return err
	}

	record, err := a.Ledger.CreateAsset(owner, arguments.Price)
	if nil != err {
		return err
	}

	a.Log.Infof("Assets.Create: %s  owner: %s", record.Id, owner)

	reply.Asset = record
	return nil
}

// Asset transfer
// --------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller string           `json:"caller"`
	To     *account.Account `json:"to"`
	Id     asset.Identifier `json:"id"`
}

// Transfer - give one of the caller's assets to another account
func (a *Assets) Transfer(arguments *TransferArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.To || 0 == len(arguments.Id) {
		return fault.ErrMissingParameters
	}

	from, err := a.Authenticator.Authenticate(arguments.Caller)
	if nil != err {
		return err
	}

	a.Log.Infof("Assets.Transfer: %s  from: %s  to: %s", arguments.Id, from, arguments.To)

	record, err := a.Ledger.TransferAsset(from, *arguments.To, arguments.Id)
	if nil != err {
		return err
	}

	reply.Asset = record
	return nil
}

// Asset get
// ---------

// GetArguments - arguments for RPC
type GetArguments struct {
	Id asset.Identifier `json:"id"`
}

// Get - fetch one asset record
func (a *Assets) Get(arguments *GetArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Id) {
		return fault.ErrMissingParameters
	}

	record, err := a.Ledger.Asset(arguments.Id)
	if nil != err {
		return err
	}

	reply.Asset = record
	return nil
}

// Assets owned
// ------------

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
}

// OwnedReply - result from RPC
type OwnedReply struct {
	Owner  *account.Account `json:"owner"`
	Assets []asset.Record   `json:"assets"`
}

// Owned - every asset held by an account in index order
func (a *Assets) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	records, err := a.Ledger.Owned(*arguments.Owner)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Assets = records
	return nil
}
