// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/attribute"
	"github.com/bitmark-inc/ledgerd/fault"
)

// packed layout: owner ⧺ attribute ⧺ price ⧺ created at
const (
	ownerLength    = 1 + account.PublicKeyLength
	attributeStart = ownerLength
	priceStart     = attributeStart + 1
	createdStart   = priceStart + 8
	packedLength   = createdStart + 8
)

// Record - an asset and its current owner
type Record struct {
	Id        Identifier         `json:"id"`
	Owner     account.Account    `json:"owner"`
	Attribute attribute.Category `json:"attribute"`
	Price     uint64             `json:"price"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Pack - the stored form of the record, the id is the key
func (record Record) Pack() []byte {
	buffer := make([]byte, 0, packedLength)
	buffer = append(buffer, record.Owner.Bytes()...)
	buffer = append(buffer, byte(record.Attribute))

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, record.Price)
	buffer = append(buffer, n...)
	binary.BigEndian.PutUint64(n, uint64(record.CreatedAt.Unix()))
	buffer = append(buffer, n...)

	return buffer
}

// Unpack - rebuild a record from its key and stored form
func Unpack(id []byte, packed []byte) (Record, error) {
	if packedLength != len(packed) {
		return Record{}, fault.ErrCorruptRecord
	}

	owner, err := account.FromBytes(packed[:ownerLength])
	if nil != err {
		return Record{}, fault.ErrCorruptRecord
	}

	category, err := attribute.FromByte(packed[attributeStart])
	if nil != err {
		return Record{}, fault.ErrCorruptRecord
	}

	createdAt := int64(binary.BigEndian.Uint64(packed[createdStart:]))

	return Record{
		Id:        append(Identifier{}, id...),
		Owner:     owner,
		Attribute: category,
		Price:     binary.BigEndian.Uint64(packed[priceStart:createdStart]),
		CreatedAt: time.Unix(createdAt, 0).UTC(),
	}, nil
}
