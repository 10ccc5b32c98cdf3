// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/account"
)

// TrustedAuthenticator - accept the account named by the caller
//
// the transport is trusted to have established the caller's identity
type TrustedAuthenticator struct{}

// Authenticate - decode the base58 account
func (TrustedAuthenticator) Authenticate(credential string) (account.Account, error) {
	return account.FromBase58(credential)
}
