// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/ledgerd/account"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Clock - source of creation times and event timestamps
type Clock interface {
	Now() time.Time
}

// Beacon - source of entropy for asset identifiers
type Beacon interface {
	Random(subject []byte) []byte
}

// EventSink - receives committed events
//
// Deliver must not block the ledger
type EventSink interface {
	Deliver(Event)
}

// Monitor - operation outcomes for metrics
type Monitor interface {
	Operation(name string, err error)
	Supply(total uint64)
	Assets(created uint64)
}

// Authenticator - map a caller credential to the account it acts for
type Authenticator interface {
	Authenticate(credential string) (account.Account, error)
}
