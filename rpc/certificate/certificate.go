// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS configuration from PEM text
package certificate

import (
	"crypto/tls"

	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/logger"
)

// Get - verify a PEM certificate and key and return the TLS
// configuration together with the SHA3-256 certificate fingerprint
//
// FreeBSD: openssl x509 -outform DER -in ledgerd-local-rpc.crt | sha3sum -a 256
func Get(log *logger.L, name, certificate, key string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}
