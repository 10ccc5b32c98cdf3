// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/fault"
)

var (
	ErrRequiredAssetId  = fault.InvalidError("asset id is required")
	ErrRequiredCaller   = fault.InvalidError("caller is required")
	ErrRequiredOwner    = fault.InvalidError("owner is required")
	ErrRequiredReceiver = fault.InvalidError("receiver is required")
)

// caller is required; it is passed to the server as-is
func checkCaller(caller string) (string, error) {
	if "" == caller {
		return "", ErrRequiredCaller
	}
	return caller, nil
}

// account is required and must decode
func checkAccount(s string, missing error) (account.Account, error) {
	if "" == s {
		return account.Account{}, missing
	}
	return account.FromBase58(s)
}

func checkAssetId(s string) (asset.Identifier, error) {
	if "" == s {
		return nil, ErrRequiredAssetId
	}
	return asset.IdentifierFromString(s)
}
