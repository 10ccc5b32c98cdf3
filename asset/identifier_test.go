// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/fault"
)

var testTime = time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC)

func TestNewIdentifier(t *testing.T) {
	entropy := []byte("beacon output")

	id, err := asset.NewIdentifier(32, 0, testTime, entropy)
	assert.Nil(t, err, "identifier error")
	assert.Equal(t, 32, len(id), "wrong length")

	again, err := asset.NewIdentifier(32, 0, testTime, entropy)
	assert.Nil(t, err, "identifier error")
	assert.Equal(t, id, again, "identifier must be deterministic")

	other, _ := asset.NewIdentifier(32, 1, testTime, entropy)
	assert.NotEqual(t, id, other, "nonce must change the identifier")

	other, _ = asset.NewIdentifier(32, 0, testTime.Add(time.Second), entropy)
	assert.NotEqual(t, id, other, "time must change the identifier")

	other, _ = asset.NewIdentifier(32, 0, testTime, []byte("other"))
	assert.NotEqual(t, id, other, "entropy must change the identifier")

	// shorter ids are a prefix of the same stream
	short, _ := asset.NewIdentifier(9, 0, testTime, entropy)
	assert.Equal(t, []byte(id[:9]), []byte(short), "shake output must be a prefix")
}

func TestNewIdentifierLength(t *testing.T) {
	for _, n := range []int{0, 7, 65} {
		_, err := asset.NewIdentifier(n, 0, testTime, nil)
		assert.Equal(t, fault.ErrInvalidIdentifierLength, err, "length: %d", n)
	}
	for _, n := range []int{8, 33, 64} {
		id, err := asset.NewIdentifier(n, 0, testTime, nil)
		assert.Nil(t, err, "length: %d", n)
		assert.Equal(t, n, len(id), "length: %d", n)
	}
}

func TestIdentifierText(t *testing.T) {
	id, _ := asset.NewIdentifier(16, 42, testTime, []byte{1, 2, 3})

	s := id.String()
	assert.Equal(t, 32, len(s), "hex length")

	back, err := asset.IdentifierFromString(s)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, id, back, "round trip mismatch")

	buffer, err := json.Marshal(map[string]asset.Identifier{"id": id})
	assert.Nil(t, err, "JSON error")
	assert.Equal(t, `{"id":"`+s+`"}`, string(buffer), "wrong JSON")

	_, err = asset.IdentifierFromString("not-hex")
	assert.Equal(t, fault.ErrInvalidIdentifier, err, "wrong error")

	_, err = asset.IdentifierFromString("0102")
	assert.Equal(t, fault.ErrInvalidIdentifierLength, err, "wrong error")
}
