// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m.caller)
	if nil != err {
		return err
	}
	price := c.Uint64("price")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateAsset(caller, price)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m.caller)
	if nil != err {
		return err
	}
	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}
	to, err := checkAccount(c.String("receiver"), ErrRequiredReceiver)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %s\n", id)
		fmt.Fprintf(m.e, "to: %s\n", to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferAsset(caller, to, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Asset(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

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

	response, err := client.Owned(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
