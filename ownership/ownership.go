// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - bounded per-owner index of asset identifiers
//
// from storage/doc.go:
//
//   L ++ owner  - concatenated asset ids, at most capacity entries
//
// the order of the list is not stable: removal moves the last entry
// into the vacated slot
package ownership

import (
	"bytes"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

// List - asset ids held by one owner
type List [][]byte

// Index - owner → list of asset ids
type Index struct {
	pool     *storage.PoolHandle
	idLength int
	capacity int
}

// New - index over a pool for fixed length ids
func New(pool *storage.PoolHandle, idLength int, capacity int) (*Index, error) {
	if idLength <= 0 {
		return nil, fault.ErrInvalidIdentifierLength
	}
	if capacity <= 0 {
		return nil, fault.ErrInvalidOwnerCapacity
	}
	return &Index{
		pool:     pool,
		idLength: idLength,
		capacity: capacity,
	}, nil
}

// Capacity - maximum number of ids per owner
func (ix *Index) Capacity() int {
	return ix.capacity
}

// Owned - the ids currently held by owner
func (ix *Index) Owned(r storage.Reader, owner account.Account) (List, error) {
	packed := r.Get(ix.pool, owner.Bytes())
	if 0 != len(packed)%ix.idLength {
		return nil, fault.ErrCorruptIndex
	}

	n := len(packed) / ix.idLength
	list := make(List, 0, n)
	for i := 0; i < n; i += 1 {
		id := make([]byte, ix.idLength)
		copy(id, packed[i*ix.idLength:])
		list = append(list, id)
	}
	return list, nil
}

// Contains - true if owner holds id
func (ix *Index) Contains(r storage.Reader, owner account.Account, id []byte) (bool, error) {
	list, err := ix.Owned(r, owner)
	if nil != err {
		return false, err
	}
	return list.Position(id) >= 0, nil
}

// Append - add id to the end of owner's list
func (ix *Index) Append(trx storage.Transaction, owner account.Account, id []byte) error {
	if len(id) != ix.idLength {
		return fault.ErrInvalidIdentifierLength
	}
	list, err := ix.Owned(trx, owner)
	if nil != err {
		return err
	}
	if len(list) >= ix.capacity {
		return fault.ErrCapacityExceeded
	}
	ix.Write(trx, owner, append(list, id))
	return nil
}

// Remove - delete id from owner's list, moving the last entry into its slot
func (ix *Index) Remove(trx storage.Transaction, owner account.Account, id []byte) error {
	list, err := ix.Owned(trx, owner)
	if nil != err {
		return err
	}
	i := list.Position(id)
	if i < 0 {
		return fault.ErrNotOwner
	}
	ix.Write(trx, owner, list.SwapRemove(i))
	return nil
}

// Full - true if the list cannot take another entry
func (ix *Index) Full(list List) bool {
	return len(list) >= ix.capacity
}

// Write - stage the complete list for owner
//
// an empty list removes the owner's entry
func (ix *Index) Write(trx storage.Transaction, owner account.Account, list List) {
	if 0 == len(list) {
		trx.Delete(ix.pool, owner.Bytes())
		return
	}
	trx.Put(ix.pool, owner.Bytes(), list.Pack())
}

// Position - index of id in the list or -1
func (list List) Position(id []byte) int {
	for i, item := range list {
		if bytes.Equal(item, id) {
			return i
		}
	}
	return -1
}

// SwapRemove - remove the i'th entry by moving the last entry into its place
//
// the receiver is modified
func (list List) SwapRemove(i int) List {
	last := len(list) - 1
	list[i] = list[last]
	return list[:last]
}

// Pack - concatenate the ids
func (list List) Pack() []byte {
	buffer := make([]byte, 0, len(list)*32)
	for _, id := range list {
		buffer = append(buffer, id...)
	}
	return buffer
}
