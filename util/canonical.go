// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Connection - a validated IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse "IP:port" or "[IPv6]:port"
//
// "*" is accepted as the IPv4 wildcard address
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.ErrInvalidIpAddress
	}

	host = strings.TrimSpace(host)
	if "*" == host {
		host = "0.0.0.0"
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return nil, fault.ErrInvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return nil, fault.ErrInvalidPortNumber
	}

	return &Connection{
		ip:   ip,
		port: numericPort,
	}, nil
}

// CanonicalIPandPort - make the IP:Port canonical with an optional prefix
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// second result is true for IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - canonical form without prefix
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
