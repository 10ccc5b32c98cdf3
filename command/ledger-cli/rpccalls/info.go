// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/rpc/node"
)

// GetInfo - ledger and daemon summary
func (c *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", "Info", node.InfoArguments{}, reply)
	return reply, err
}
