// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(owner, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m.caller)
	if nil != err {
		return err
	}
	to, err := checkAccount(c.String("receiver"), ErrRequiredReceiver)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(caller, to, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m.caller)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(caller, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Supply()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalances(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fault.ErrInvalidCount
	}

	var start *account.Account
	if s := c.String("start"); "" != s {
		a, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		start = &a
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAudit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Audit()
	if nil != err {
		return err
	}

	err = printJson(m.w, response)
	if nil != err {
		return err
	}
	if !response.Consistent {
		return fault.ErrSupplyMismatch
	}
	return nil
}
