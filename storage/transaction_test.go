// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
)

func TestTransactionReadsOwnWrites(t *testing.T) {
	store := setup(t)
	defer store.Close()

	trx, err := store.Begin()
	if !assert.Nil(t, err, "begin error") {
		return
	}

	key := []byte("key")
	trx.Put(store.TestData, key, []byte("staged"))
	trx.PutN(store.Balances, key, 1234)

	assert.Equal(t, []byte("staged"), trx.Get(store.TestData, key), "staged value not visible")
	assert.True(t, trx.Has(store.TestData, key), "staged key not visible")
	n, found := trx.GetN(store.Balances, key)
	assert.True(t, found, "staged number not visible")
	assert.Equal(t, uint64(1234), n, "wrong staged number")

	// not yet committed
	assert.Nil(t, store.Get(store.TestData, key), "uncommitted write leaked")
	assert.False(t, store.Has(store.TestData, key), "uncommitted key leaked")
	_, found = store.GetN(store.Balances, key)
	assert.False(t, found, "uncommitted number leaked")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, trx.InUse(), "transaction still in use after commit")

	assert.Equal(t, []byte("staged"), store.Get(store.TestData, key), "committed value missing")
	n, found = store.GetN(store.Balances, key)
	assert.True(t, found, "committed number missing")
	assert.Equal(t, uint64(1234), n, "wrong committed number")
}

func TestTransactionAbort(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	trx, err := store.Begin()
	if !assert.Nil(t, err, "begin error") {
		return
	}

	trx.Put(store.TestData, []byte("key-one"), []byte("changed"))
	trx.Delete(store.TestData, []byte("key-two"))
	trx.Put(store.TestData, []byte("key-new"), []byte("new"))
	assert.Equal(t, []byte("changed"), trx.Get(store.TestData, []byte("key-one")), "staged value not visible")

	trx.Abort()
	assert.False(t, trx.InUse(), "transaction still in use after abort")

	assert.Equal(t, []byte("data-one"), store.Get(store.TestData, []byte("key-one")), "abort did not discard put")
	assert.Equal(t, []byte("data-two"), store.Get(store.TestData, []byte("key-two")), "abort did not discard delete")
	assert.False(t, store.Has(store.TestData, []byte("key-new")), "abort did not discard new key")

	// the overlay is cleared as well
	assert.Equal(t, []byte("data-one"), trx.Get(store.TestData, []byte("key-one")), "overlay survived abort")
}

func TestTransactionDelete(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	trx, err := store.Begin()
	if !assert.Nil(t, err, "begin error") {
		return
	}

	trx.Delete(store.TestData, []byte("key-two"))
	assert.Nil(t, trx.Get(store.TestData, []byte("key-two")), "deleted key still readable")
	assert.False(t, trx.Has(store.TestData, []byte("key-two")), "deleted key still present")
	assert.True(t, store.Has(store.TestData, []byte("key-two")), "delete leaked before commit")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, store.Has(store.TestData, []byte("key-two")), "delete not committed")
}

func TestTransactionSingleWriter(t *testing.T) {
	store := setup(t)
	defer store.Close()

	trx, err := store.Begin()
	assert.Nil(t, err, "begin error")

	_, err = store.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "wrong error")

	trx.Abort()

	_, err = store.Begin()
	assert.Nil(t, err, "begin after abort error")
}

func TestCommitWithoutBegin(t *testing.T) {
	store := setup(t)
	defer store.Close()

	trx, err := store.Begin()
	assert.Nil(t, err, "begin error")
	trx.Abort()

	err = trx.Commit()
	assert.Equal(t, fault.ErrTransactionNotStarted, err, "wrong error")
}

func TestPutWithoutBeginPanics(t *testing.T) {
	store := setup(t)
	defer store.Close()

	trx, err := store.Begin()
	assert.Nil(t, err, "begin error")
	trx.Abort()

	assert.Panics(t, func() {
		trx.Put(store.TestData, []byte("key"), []byte("value"))
	}, "put outside a transaction must panic")
}

func TestPoolsAreSeparate(t *testing.T) {
	store := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	trx.PutN(store.Supply, []byte("total"), 10)
	trx.PutN(store.Nonce, []byte("total"), 20)
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	n, _ := store.GetN(store.Supply, []byte("total"))
	assert.Equal(t, uint64(10), n, "wrong supply")
	n, _ = store.GetN(store.Nonce, []byte("total"))
	assert.Equal(t, uint64(20), n, "wrong nonce")
}
