// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

func TestOpenAndReopen(t *testing.T) {
	removeFiles()
	defer removeFiles()

	store, err := storage.Open(databaseFileName, storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	populate(t, store)
	store.Close()

	// closing twice is harmless
	store.Close()

	store, err = storage.Open(databaseFileName, storage.ReadOnly)
	if !assert.Nil(t, err, "reopen error") {
		return
	}
	defer store.Close()

	assert.Equal(t, []byte("data-three"), store.TestData.Get([]byte("key-three")), "data not persisted")
	assert.True(t, store.TestData.Has([]byte("key-seven")), "key not persisted")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	removeFiles()
	defer removeFiles()

	_, err := storage.Open(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of a missing database must fail")
}

func TestRefuseDowngrade(t *testing.T) {
	removeFiles()
	defer removeFiles()

	db, err := leveldb.OpenFile(databaseFileName, nil)
	if !assert.Nil(t, err, "leveldb open error") {
		return
	}
	future := make([]byte, 4)
	binary.BigEndian.PutUint32(future, 0x7fff)
	err = db.Put(versionKey, future, nil)
	assert.Nil(t, err, "put version error")
	db.Close()

	_, err = storage.Open(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "wrong error")
}

func TestVersionWritten(t *testing.T) {
	removeFiles()
	defer removeFiles()

	store, err := storage.Open(databaseFileName, storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	store.Close()

	db, err := leveldb.OpenFile(databaseFileName, nil)
	if !assert.Nil(t, err, "leveldb open error") {
		return
	}
	defer db.Close()

	version, err := db.Get(versionKey, nil)
	assert.Nil(t, err, "version missing")
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, version, "wrong version")
}

func TestClosedStoreReads(t *testing.T) {
	store := setup(t)
	populate(t, store)
	store.Close()

	assert.Nil(t, store.TestData.Get([]byte("key-one")), "closed store must return nil")
	assert.False(t, store.TestData.Has([]byte("key-one")), "closed store must not have keys")

	elements, err := store.TestData.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Nil(t, elements, "closed store must not fetch")
}
