// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queue carrying ledger events from the
// service to the publishers
//
// the sending side never blocks: when the queue is full the event is
// dropped and counted
package messagebus
