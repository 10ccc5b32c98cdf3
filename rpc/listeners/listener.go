// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept loops for the client RPC server
package listeners

// Listener - a bound server
type Listener interface {
	Serve() error
	Stop()
}
