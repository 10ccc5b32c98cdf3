// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the ledger service
//
// combines the balance ledger and the asset registry over one store;
// every mutating operation runs alone inside a single storage
// transaction which is committed only if the whole operation succeeds
package ledger
