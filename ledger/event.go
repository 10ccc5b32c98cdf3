// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
)

// Kind - type of event
type Kind string

// event kinds
const (
	Minted           Kind = "minted"
	Transferred      Kind = "transferred"
	Burned           Kind = "burned"
	AssetCreated     Kind = "assetCreated"
	AssetTransferred Kind = "assetTransferred"
)

// Event - notification of a committed operation
//
// only the fields relevant to the kind are set
type Event struct {
	Sequence  uint64           `json:"sequence"`
	Timestamp time.Time        `json:"timestamp"`
	Kind      Kind             `json:"kind"`
	Account   *account.Account `json:"account,omitempty"`
	From      *account.Account `json:"from,omitempty"`
	To        *account.Account `json:"to,omitempty"`
	Amount    uint64           `json:"amount,omitempty"`
	AssetId   asset.Identifier `json:"assetId,omitempty"`
}
