// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const (
	defaultConnect = "127.0.0.1:2130"
)

type metadata struct {
	connect string
	caller  string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "client for the ledgerd JSON RPC"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate testnet accounts",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " ledgerd RPC `HOST:PORT`",
			EnvVar: "LEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " `ACCOUNT` performing transfer, burn and create",
			EnvVar: "LEDGER_CALLER",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new account and private key",
			Action: runGenerate,
		},
		{
			Name:      "mint",
			Usage:     "credit new value to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Usage: "*`AMOUNT` to mint",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "move value from the caller to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Usage: "*`AMOUNT` to send",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "destroy value held by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, n",
					Usage: "*`AMOUNT` to burn",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "balance",
			Usage:     "show the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*`ACCOUNT` to query",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "supply",
			Usage:  "show the total supply",
			Action: runSupply,
		},
		{
			Name:  "balances",
			Usage: "list balances in account order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Usage: " list accounts after `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of entries `COUNT`",
				},
			},
			Action: runBalances,
		},
		{
			Name:   "audit",
			Usage:  "compare the sum of balances with the total supply",
			Action: runAudit,
		},
		{
			Name:  "create",
			Usage: "create an asset owned by the caller",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: " asset `PRICE`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer-asset",
			Usage:     "give one of the caller's assets to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID` in hex",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runTransferAsset,
		},
		{
			Name:      "asset",
			Usage:     "show one asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID` in hex",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "owned",
			Usage:     "list the assets of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*`ACCOUNT` to query",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display ledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("caller"),
			testnet: c.GlobalBool("testnet"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
