// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. account      = variant byte ++ 32 byte public key
// 4. asset id     = fixed length identifier (length set by configuration)
// 5. amount/count = big endian uint64 (8 bytes)
//
// Balances:
//
//   B ++ account               - fungible balance of an account
//                                data: amount
//   S ++ "total"               - total supply
//                                data: amount
//
// Assets:
//
//   A ++ asset id              - asset record
//                                data: owner ++ attribute ++ price ++ created at
//   N ++ "next"                - nonce for the next asset identifier
//                                data: count
//
// Ownership:
//
//   L ++ owner                 - bounded list of owned assets
//                                data: asset id ++ asset id ++ ...
//
// Testing:
//
//   Z ++ key                   - scratch pool used by tests
//
// All writes go through a Transaction: they are staged in a LevelDB
// batch and only reach the database on Commit, so a failed operation
// is discarded by Abort without touching the stored state.
package storage
