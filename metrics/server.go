// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/logger"
)

const (
	defaultPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
	Path   string `gluamapper:"path" json:"path"`
}

// Server - HTTP endpoint for a recorder
type Server struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// NewServer - bind the listen address
//
// returns nil, nil when no address is configured
func NewServer(configuration *Configuration, recorder *Recorder) (*Server, error) {
	if "" == configuration.Listen {
		return nil, nil
	}

	log := logger.New("metrics")

	conn, err := util.NewConnection(configuration.Listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", configuration.Listen, err)
		return nil, err
	}

	listener, err := net.Listen("tcp", conn.String())
	if nil != err {
		log.Errorf("listen: %q  error: %s", conn.String(), err)
		return nil, err
	}

	path := configuration.Path
	if "" == path {
		path = defaultPath
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(recorder.Registry(), promhttp.HandlerOpts{}))

	log.Infof("serving: http://%s%s", listener.Addr(), path)

	return &Server{
		log:      log,
		listener: listener,
		server:   &http.Server{Handler: mux},
	}, nil
}

// Addr - the bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); nil != err {
		log.Warnf("shutdown error: %s", err)
	}
	<-done
	log.Info("stopped")
}
