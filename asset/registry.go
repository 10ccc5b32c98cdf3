// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"time"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/attribute"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ownership"
	"github.com/bitmark-inc/ledgerd/safemath"
	"github.com/bitmark-inc/ledgerd/storage"
)

var nonceKey = []byte("next")

// Configuration - registry parameters
//
// identifier length and capacity are fixed for the life of a database
type Configuration struct {
	IdentifierLength int
	Capacity         int
	Deriver          attribute.Deriver
}

// Registry - assets by id plus the per-owner index
type Registry struct {
	assets           *storage.PoolHandle
	nonce            *storage.PoolHandle
	index            *ownership.Index
	identifierLength int
	deriver          attribute.Deriver
}

// New - create a registry over the asset, nonce and owner list pools
func New(assets *storage.PoolHandle, nonce *storage.PoolHandle, ownerList *storage.PoolHandle, configuration Configuration) (*Registry, error) {
	length := configuration.IdentifierLength
	if 0 == length {
		length = DefaultIdentifierLength
	}
	if length < MinimumIdentifierLength || length > MaximumIdentifierLength {
		return nil, fault.ErrInvalidIdentifierLength
	}

	index, err := ownership.New(ownerList, length, configuration.Capacity)
	if nil != err {
		return nil, err
	}

	deriver := configuration.Deriver
	if nil == deriver {
		deriver = attribute.Parity
	}

	return &Registry{
		assets:           assets,
		nonce:            nonce,
		index:            index,
		identifierLength: length,
		deriver:          deriver,
	}, nil
}

// IdentifierLength - length of every id in this registry
func (r *Registry) IdentifierLength() int {
	return r.identifierLength
}

// Capacity - maximum assets per owner
func (r *Registry) Capacity() int {
	return r.index.Capacity()
}

// Nonce - the value that will seed the next identifier
func (r *Registry) Nonce(reader storage.Reader) uint64 {
	n, _ := reader.GetN(r.nonce, nonceKey)
	return n
}

// Get - fetch a single asset
func (r *Registry) Get(reader storage.Reader, id Identifier) (Record, error) {
	packed := reader.Get(r.assets, id)
	if nil == packed {
		return Record{}, fault.ErrNotFound
	}
	return Unpack(id, packed)
}

// Owned - records of all assets held by owner
func (r *Registry) Owned(reader storage.Reader, owner account.Account) ([]Record, error) {
	list, err := r.index.Owned(reader, owner)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(list))
	for _, id := range list {
		record, err := r.Get(reader, id)
		if nil == err && record.Owner != owner {
			err = fault.ErrCorruptIndex
		}
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Create - register a new asset for owner
//
// all checks run before anything is staged: a duplicate id, a full
// owner list or an exhausted nonce leave the transaction unchanged
func (r *Registry) Create(trx storage.Transaction, owner account.Account, price uint64, createdAt time.Time, entropy []byte) (Record, error) {
	nonce := r.Nonce(trx)

	id, err := NewIdentifier(r.identifierLength, nonce, createdAt, entropy)
	if nil != err {
		return Record{}, err
	}

	if trx.Has(r.assets, id) {
		return Record{}, fault.ErrDuplicateAsset
	}

	list, err := r.index.Owned(trx, owner)
	if nil != err {
		return Record{}, err
	}
	if r.index.Full(list) {
		return Record{}, fault.ErrCapacityExceeded
	}

	next, err := safemath.Increment(nonce)
	if nil != err {
		return Record{}, err
	}

	record := Record{
		Id:        id,
		Owner:     owner,
		Attribute: r.deriver.Derive(id),
		Price:     price,
		CreatedAt: time.Unix(createdAt.Unix(), 0).UTC(),
	}

	r.index.Write(trx, owner, append(list, id))
	trx.Put(r.assets, id, record.Pack())
	trx.PutN(r.nonce, nonceKey, next)

	return record, nil
}

// Transfer - move an asset from its current owner to another account
//
// checks in order: existence, ownership, self transfer, the sender's
// index entry and the receiver's capacity; nothing is staged unless
// all of them pass
func (r *Registry) Transfer(trx storage.Transaction, id Identifier, from account.Account, to account.Account) (Record, error) {
	record, err := r.Get(trx, id)
	if nil != err {
		return Record{}, err
	}

	if record.Owner != from {
		return Record{}, fault.ErrNotOwner
	}

	if from == to {
		return Record{}, fault.ErrSelfTransfer
	}

	fromList, err := r.index.Owned(trx, from)
	if nil != err {
		return Record{}, err
	}
	position := fromList.Position(id)
	if position < 0 {
		return Record{}, fault.ErrNotOwner
	}
	fromList = fromList.SwapRemove(position)

	toList, err := r.index.Owned(trx, to)
	if nil != err {
		return Record{}, err
	}
	if r.index.Full(toList) {
		return Record{}, fault.ErrCapacityExceeded
	}

	record.Owner = to

	r.index.Write(trx, from, fromList)
	r.index.Write(trx, to, append(toList, id))
	trx.Put(r.assets, id, record.Pack())

	return record, nil
}
