// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing group of writes
//
// reads through a transaction see its own earlier writes
type Transaction interface {
	Reader
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - transaction over a single Access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse("Put")
	t.access.Put(p.prefixKey(key), value)
}

func (t *TransactionImpl) PutN(p *PoolHandle, key []byte, value uint64) {
	t.mustBeInUse("PutN")
	t.access.Put(p.prefixKey(key), encodeN(value))
}

func (t *TransactionImpl) Delete(p *PoolHandle, key []byte) {
	t.mustBeInUse("Delete")
	t.access.Delete(p.prefixKey(key))
}

func (t *TransactionImpl) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionImpl) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *TransactionImpl) Has(p *PoolHandle, key []byte) bool {
	found, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionImpl) mustBeInUse(operation string) {
	if !t.access.InUse() {
		logger.Panicf("transaction.%s: %s", operation, fault.ErrTransactionNotStarted)
	}
}
