// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of unique assets
//
// each asset is keyed by an identifier derived from the registry
// nonce, the creation time and beacon entropy; the record holds the
// single current owner and the owner index (package ownership) holds
// the reverse mapping
package asset
