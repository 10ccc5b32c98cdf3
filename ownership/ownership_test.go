// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/ownership"
	"github.com/bitmark-inc/ledgerd/storage"
)

const (
	idLength = 4
	capacity = 3
)

var (
	alice = fixtures.Alice
	bob   = fixtures.Bob

	id1 = []byte{0x01, 0x01, 0x01, 0x01}
	id2 = []byte{0x02, 0x02, 0x02, 0x02}
	id3 = []byte{0x03, 0x03, 0x03, 0x03}
	id4 = []byte{0x04, 0x04, 0x04, 0x04}
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setup(t *testing.T) (*storage.Store, *ownership.Index) {
	store, err := storage.OpenMemory()
	require.Nil(t, err, "open error")
	ix, err := ownership.New(store.OwnerList, idLength, capacity)
	require.Nil(t, err, "index error")
	return store, ix
}

func TestNewInvalid(t *testing.T) {
	store, err := storage.OpenMemory()
	require.Nil(t, err, "open error")
	defer store.Close()

	_, err = ownership.New(store.OwnerList, 0, 5)
	assert.Equal(t, fault.ErrInvalidIdentifierLength, err, "wrong error")

	_, err = ownership.New(store.OwnerList, 32, 0)
	assert.Equal(t, fault.ErrInvalidOwnerCapacity, err, "wrong error")
}

func TestAppendToCapacity(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, err := store.Begin()
	require.Nil(t, err, "begin error")
	defer trx.Abort()

	assert.Nil(t, ix.Append(trx, alice, id1), "append 1")
	assert.Nil(t, ix.Append(trx, alice, id2), "append 2")
	assert.Nil(t, ix.Append(trx, alice, id3), "append 3")

	err = ix.Append(trx, alice, id4)
	assert.Equal(t, fault.ErrCapacityExceeded, err, "wrong error")

	list, err := ix.Owned(trx, alice)
	assert.Nil(t, err, "owned error")
	assert.Equal(t, ownership.List{id1, id2, id3}, list, "wrong list")
	assert.True(t, ix.Full(list), "list must be full")

	// other owners are unaffected
	list, err = ix.Owned(trx, bob)
	assert.Nil(t, err, "owned error")
	assert.Equal(t, 0, len(list), "bob must own nothing")
}

func TestAppendWrongLength(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	defer trx.Abort()

	err := ix.Append(trx, alice, []byte{0x01})
	assert.Equal(t, fault.ErrInvalidIdentifierLength, err, "wrong error")
}

func TestRemoveSwapsLast(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	require.Nil(t, ix.Append(trx, alice, id1), "append")
	require.Nil(t, ix.Append(trx, alice, id2), "append")
	require.Nil(t, ix.Append(trx, alice, id3), "append")
	require.Nil(t, trx.Commit(), "commit")

	trx, _ = store.Begin()
	err := ix.Remove(trx, alice, id1)
	assert.Nil(t, err, "remove error")
	require.Nil(t, trx.Commit(), "commit")

	list, err := ix.Owned(store, alice)
	assert.Nil(t, err, "owned error")
	assert.Equal(t, ownership.List{id3, id2}, list, "last entry must fill the gap")

	found, err := ix.Contains(store, alice, id1)
	assert.Nil(t, err, "contains error")
	assert.False(t, found, "removed id still present")

	found, err = ix.Contains(store, alice, id2)
	assert.Nil(t, err, "contains error")
	assert.True(t, found, "remaining id missing")
}

func TestRemoveAll(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	require.Nil(t, ix.Append(trx, alice, id1), "append")
	require.Nil(t, ix.Remove(trx, alice, id1), "remove")
	require.Nil(t, trx.Commit(), "commit")

	assert.False(t, store.OwnerList.Has(alice.Bytes()), "empty list must not be stored")
}

func TestRemoveNotOwned(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	defer trx.Abort()
	require.Nil(t, ix.Append(trx, alice, id1), "append")

	err := ix.Remove(trx, alice, id2)
	assert.Equal(t, fault.ErrNotOwner, err, "wrong error")

	err = ix.Remove(trx, bob, id1)
	assert.Equal(t, fault.ErrNotOwner, err, "wrong error")
}

func TestCorruptIndex(t *testing.T) {
	store, ix := setup(t)
	defer store.Close()

	trx, _ := store.Begin()
	trx.Put(store.OwnerList, alice.Bytes(), []byte{0x01, 0x02, 0x03, 0x04, 0x05})
	require.Nil(t, trx.Commit(), "commit")

	_, err := ix.Owned(store, alice)
	assert.Equal(t, fault.ErrCorruptIndex, err, "wrong error")

	_, err = ix.Contains(store, alice, id1)
	assert.Equal(t, fault.ErrCorruptIndex, err, "wrong error")
}

func TestListHelpers(t *testing.T) {
	list := ownership.List{id1, id2, id3, id4}

	assert.Equal(t, 2, list.Position(id3), "wrong position")
	assert.Equal(t, -1, list.Position([]byte{0x09, 0x09, 0x09, 0x09}), "wrong position")
	assert.Equal(t, append(append(append(append([]byte{}, id1...), id2...), id3...), id4...), list.Pack(), "wrong packing")

	list = list.SwapRemove(3)
	assert.Equal(t, ownership.List{id1, id2, id3}, list, "removing last entry")

	list = list.SwapRemove(0)
	assert.Equal(t, ownership.List{id3, id2}, list, "removing first entry")
}
