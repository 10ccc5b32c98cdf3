// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account identities
//
// an account is an ed25519 public key; the text form is:
//
//   base58( variant ⧺ public-key ⧺ sha3-256(variant ⧺ public-key)[:4] )
//
// where variant = algorithm << 4 | 0x01, with 0x02 added for testnet keys
package account
