// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - Prometheus view of the ledger
//
// The Recorder receives operation outcomes from the ledger service
// and keeps:
//
//   ledger_operations_total{operation,result}
//   ledger_total_supply
//   ledger_assets_created
//   ledger_events_dropped_total
//
// result is "ok" or the class of the returned fault.
//
// The Server exposes the recorder's registry over HTTP when a listen
// address is configured.
package metrics
