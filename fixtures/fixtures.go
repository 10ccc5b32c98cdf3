// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test accounts
var (
	Alice   = mustAccount("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")
	Bob     = mustAccount("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db")
	Charlie = mustAccount("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e")
)

// SetupTestLogger - log into a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

func mustAccount(s string) account.Account {
	publicKey, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	a, err := account.New(publicKey, true)
	if nil != err {
		panic(err)
	}
	return a
}

// Certificate - a fresh self signed PEM certificate and key for 127.0.0.1
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("ledgerd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}
