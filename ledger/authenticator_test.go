// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
)

func TestTrustedAuthenticator(t *testing.T) {
	var a ledger.Authenticator = ledger.TrustedAuthenticator{}

	acc, err := a.Authenticate(alice.String())
	assert.Nil(t, err, "authenticate error")
	assert.Equal(t, alice, acc, "wrong account")

	_, err = a.Authenticate("not an account")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "wrong error")
}
