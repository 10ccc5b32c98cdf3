// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/attribute"
	"github.com/bitmark-inc/ledgerd/fault"
)

func TestPackUnpack(t *testing.T) {
	id, _ := asset.NewIdentifier(32, 7, testTime, nil)
	record := asset.Record{
		Id:        id,
		Owner:     alice,
		Attribute: attribute.Odd,
		Price:     123456789,
		CreatedAt: testTime,
	}

	packed := record.Pack()
	assert.Equal(t, 50, len(packed), "packed length")

	back, err := asset.Unpack(id, packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, record, back, "round trip mismatch")
}

func TestUnpackCorrupt(t *testing.T) {
	id, _ := asset.NewIdentifier(32, 7, testTime, nil)
	record := asset.Record{
		Id:        id,
		Owner:     alice,
		Attribute: attribute.Even,
		CreatedAt: testTime,
	}
	packed := record.Pack()

	_, err := asset.Unpack(id, packed[:len(packed)-1])
	assert.Equal(t, fault.ErrCorruptRecord, err, "truncated record")

	badOwner := append([]byte{}, packed...)
	badOwner[0] = 0x00
	_, err = asset.Unpack(id, badOwner)
	assert.Equal(t, fault.ErrCorruptRecord, err, "bad owner")

	badAttribute := append([]byte{}, packed...)
	badAttribute[33] = 0x09
	_, err = asset.Unpack(id, badAttribute)
	assert.Equal(t, fault.ErrCorruptRecord, err, "bad attribute")
}
