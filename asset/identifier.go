// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
)

// limits on identifier length
const (
	MinimumIdentifierLength = 8
	MaximumIdentifierLength = 64
	DefaultIdentifierLength = 32
)

// Identifier - fixed length asset id
type Identifier []byte

// NewIdentifier - SHAKE-256(nonce ⧺ unix seconds ⧺ entropy) truncated to length
func NewIdentifier(length int, nonce uint64, timestamp time.Time, entropy []byte) (Identifier, error) {
	if length < MinimumIdentifierLength || length > MaximumIdentifierLength {
		return nil, fault.ErrInvalidIdentifierLength
	}

	header := make([]byte, 16)
	binary.BigEndian.PutUint64(header[:8], nonce)
	binary.BigEndian.PutUint64(header[8:], uint64(timestamp.Unix()))

	h := sha3.NewShake256()
	h.Write(header)
	h.Write(entropy)

	id := make(Identifier, length)
	h.Read(id)
	return id, nil
}

// IdentifierFromString - decode the hex form
func IdentifierFromString(s string) (Identifier, error) {
	id := Identifier{}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// String - hex form
func (id Identifier) String() string {
	return hex.EncodeToString(id)
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert hex text to identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidIdentifier
	}
	if n < MinimumIdentifierLength || n > MaximumIdentifierLength {
		return fault.ErrInvalidIdentifierLength
	}
	*id = buffer[:n]
	return nil
}
