// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/beacon"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc"
	"github.com/bitmark-inc/ledgerd/rpc/balances"
	"github.com/bitmark-inc/ledgerd/rpc/listeners"
	"github.com/bitmark-inc/ledgerd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rand.Seed(time.Now().UnixNano())
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func newService(t *testing.T) (*ledger.Service, *storage.Store) {
	store, err := storage.OpenMemory()
	require.Nil(t, err, "open error")

	b, err := beacon.New([]byte("rpc seed"))
	require.Nil(t, err, "beacon error")

	service, err := ledger.New(store, ledger.Configuration{}, ledger.Collaborators{Beacon: b})
	require.Nil(t, err, "ledger error")
	return service, store
}

func TestInitialiseDisabled(t *testing.T) {
	service, store := newService(t)
	defer store.Close()

	err := rpc.Initialise(&listeners.RPCConfiguration{}, service, ledger.TrustedAuthenticator{}, "0.1")
	require.Nil(t, err, "initialise error")

	err = rpc.Initialise(&listeners.RPCConfiguration{}, service, ledger.TrustedAuthenticator{}, "0.1")
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "wrong error")

	assert.Nil(t, rpc.Finalise(), "finalise error")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "wrong error")
}

func TestInitialiseBadCertificate(t *testing.T) {
	service, store := newService(t)
	defer store.Close()

	err := rpc.Initialise(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        "junk",
		PrivateKey:         "junk",
	}, service, ledger.TrustedAuthenticator{}, "0.1")
	assert.NotNil(t, err, "bad certificate accepted")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "must not be initialised")
}

func TestInitialiseServe(t *testing.T) {
	service, store := newService(t)
	defer store.Close()

	cer, key := fixtures.Certificate()
	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)

	err := rpc.Initialise(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}, service, ledger.TrustedAuthenticator{}, "0.1")
	require.Nil(t, err, "initialise error")
	defer rpc.Finalise()

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial error")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	alice := fixtures.Alice
	var reply balances.BalanceReply
	err = client.Call("Balances.Mint", &balances.MintArguments{Owner: &alice, Amount: 9}, &reply)
	assert.Nil(t, err, "mint error")
	assert.Equal(t, uint64(9), reply.Balance, "balance")
	assert.Equal(t, uint64(1), rpc.ConnectionCount(), "connection count")
}
