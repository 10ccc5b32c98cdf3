// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package beacon - deterministic randomness source for asset identifiers
package beacon

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Seeded - SHA3-256(seed ⧺ subject)
//
// anyone holding the seed can replay the output for a subject
type Seeded struct {
	seed []byte
}

// New - create a beacon from a non-empty seed
func New(seed []byte) (*Seeded, error) {
	if 0 == len(seed) {
		return nil, fault.ErrMissingBeaconSeed
	}
	return &Seeded{
		seed: append([]byte{}, seed...),
	}, nil
}

// Random - output for a subject
func (s *Seeded) Random(subject []byte) []byte {
	h := sha3.New256()
	h.Write(s.seed)
	h.Write(subject)
	return h.Sum(nil)
}
