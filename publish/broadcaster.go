// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/ledgerd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	queue   <-chan ledger.Event
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue <-chan ledger.Event) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	c := make([]*util.Connection, 0, len(broadcast))
	for _, address := range broadcast {
		conn, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("ip and port: %q  error: %s", address, err)
			return err
		}
		c = append(c, conn)
	}

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// wait for events and publish them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event := <-brdc.queue:
			log.Debugf("sending: %d  kind: %s", event.Sequence, event.Kind)
			name, body, err := encode(event)
			if nil != err {
				log.Errorf("encode event: %d  error: %s", event.Sequence, err)
				continue loop
			}
			send(log, brdc.socket4, name, body)
			send(log, brdc.socket6, name, body)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// the two frames of a published event: kind and JSON body
func encode(event ledger.Event) (string, []byte, error) {
	body, err := json.Marshal(event)
	if nil != err {
		return "", nil, err
	}
	return string(event.Kind), body, nil
}

// publish one event; a subscriber that cannot keep up loses the event
func send(log *logger.L, socket *zmq.Socket, name string, body []byte) {
	if nil == socket {
		return
	}

	_, err := socket.Send(name, zmq.SNDMORE|zmq.DONTWAIT)
	if nil == err {
		_, err = socket.SendBytes(body, zmq.DONTWAIT)
	}
	if nil != err {
		log.Warnf("send: %s  error: %s", name, err)
	}
}
