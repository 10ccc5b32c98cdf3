// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
)

type generateReply struct {
	Account    account.Account `json:"account"`
	PublicKey  string          `json:"publicKey"`
	PrivateKey string          `json:"privateKey"`
	Testnet    bool            `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, privateKey, err := account.Generate(rand.Reader, m.testnet)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    a,
		PublicKey:  hex.EncodeToString(a.PublicKey[:]),
		PrivateKey: hex.EncodeToString(privateKey),
		Testnet:    a.Test,
	})
}
