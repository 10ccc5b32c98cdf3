// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ledgerd/fault"
)

// FetchCursor - cursor over the committed data of a pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from key
//
// successive calls continue after the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter, ok := cursor.iterator()
	if !ok {
		return nil, nil
	}

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {
		results = append(results, element(iter))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n := len(results); n > 0 {
		// smallest key greater than the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	iter, ok := cursor.iterator()
	if !ok {
		return nil
	}

	var err error
iterating:
	for iter.Next() {
		e := element(iter)
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

func (cursor *FetchCursor) iterator() (iterator.Iterator, bool) {
	store := cursor.pool.store
	store.RLock()
	defer store.RUnlock()
	if nil == store.db {
		return nil, false
	}
	return store.db.NewIterator(&cursor.maxRange, nil), true
}

// copy out the current item with the prefix stripped
//
// contents of the iterator slices must not be modified, and are
// only valid until the next call to Next
func element(iter iterator.Iterator) Element {
	key := iter.Key()
	value := iter.Value()

	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
