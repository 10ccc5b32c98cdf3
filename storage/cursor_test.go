// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

func TestFetchAll(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	elements, err := store.TestData.NewFetchCursor().Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements, elements, "wrong elements")
}

func TestFetchPaged(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	cursor := store.TestData.NewFetchCursor()
	all := []storage.Element{}
	for {
		elements, err := cursor.Fetch(3)
		if !assert.Nil(t, err, "fetch error") {
			return
		}
		if 0 == len(elements) {
			break
		}
		assert.True(t, len(elements) <= 3, "page too large")
		all = append(all, elements...)
	}
	assert.Equal(t, expectedElements, all, "paged elements differ")
}

func TestFetchSeek(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	elements, err := store.TestData.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:5], elements, "wrong elements after seek")

	elements, err = store.TestData.NewFetchCursor().Seek(nonExistantKey).Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[:1], elements, "seek before first key")
}

func TestFetchInvalid(t *testing.T) {
	store := setup(t)
	defer store.Close()

	_, err := store.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")

	var cursor *storage.FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "wrong error")
}

func TestFetchOtherPoolEmpty(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	elements, err := store.Assets.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(elements), "pool must be empty")
}

func TestMap(t *testing.T) {
	store := setup(t)
	defer store.Close()
	populate(t, store)

	keys := []string{}
	err := store.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(expectedElements), len(keys), "wrong number of keys")

	stop := errors.New("stop")
	count := 0
	err = store.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "map must return the callback error")
	assert.Equal(t, 2, count, "map did not stop")
}
