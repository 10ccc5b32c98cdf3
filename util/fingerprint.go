// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - to hold type for fingerprint
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 of a DER encoded certificate
//
// clients compare this with the value logged at start up
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
