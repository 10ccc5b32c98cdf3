// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	PublicKeyLength = ed25519.PublicKeySize

	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	// variant byte ⧺ public key
	bytesLength = 1 + PublicKeyLength
)

// Account - a public key identity that can hold balances and own assets
//
// fixed size so it can be compared with == and used as a map key
type Account struct {
	Test      bool
	PublicKey [PublicKeyLength]byte
}

// New - create an account from a raw public key
func New(publicKey []byte, test bool) (Account, error) {
	if PublicKeyLength != len(publicKey) {
		return Account{}, fault.ErrInvalidKeyLength
	}
	a := Account{
		Test: test,
	}
	copy(a.PublicKey[:], publicKey)
	return a, nil
}

// Generate - create a new ed25519 key pair returning the account
// and the private key
func Generate(random io.Reader, test bool) (Account, ed25519.PrivateKey, error) {
	if nil == random {
		random = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return Account{}, nil, err
	}
	a, err := New(publicKey, test)
	return a, privateKey, err
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return Account{}, fault.ErrCannotDecodeAccount
	}

	if bytesLength+checksumLength != len(accountDecoded) {
		return Account{}, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return Account{}, fault.ErrChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert a variant prefixed key to an account
func FromBytes(accountBytes []byte) (Account, error) {
	if bytesLength != len(accountBytes) {
		return Account{}, fault.ErrInvalidKeyLength
	}

	keyVariant := accountBytes[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return Account{}, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return Account{}, fault.ErrInvalidKeyType
	}

	return New(accountBytes[1:], 0 != keyVariant&testKeyCode)
}

// Bytes - variant byte followed by the public key
//
// this is the form used as a database key
func (account Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of the bytes with a checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsZero - true for the all zero key
func (account Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}
