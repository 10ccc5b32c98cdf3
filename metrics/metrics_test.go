// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/background"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, "ok"},
		{fault.ErrOverflow, "arithmetic"},
		{fault.ErrUnderflow, "arithmetic"},
		{fault.ErrDuplicateAsset, "exists"},
		{fault.ErrInsufficientBalance, "invalid"},
		{fault.ErrNotOwner, "invalid"},
		{fault.ErrCapacityExceeded, "limit"},
		{fault.ErrNotFound, "not_found"},
		{fault.ErrSupplyMismatch, "record"},
		{os.ErrClosed, "error"},
	}

	for i, item := range tests {
		assert.Equal(t, item.expected, resultOf(item.err), "%d: %v", i, item.err)
	}
}

func TestRecorder(t *testing.T) {
	dropped := uint64(7)
	r := New(func() uint64 { return dropped })

	r.Operation("mint", nil)
	r.Operation("mint", nil)
	r.Operation("mint", fault.ErrOverflow)
	r.Operation("burn", fault.ErrInsufficientBalance)
	r.Supply(1500)
	r.Assets(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.operations.WithLabelValues("mint", "ok")), "mint ok")
	assert.Equal(t, float64(1), testutil.ToFloat64(r.operations.WithLabelValues("mint", "arithmetic")), "mint overflow")
	assert.Equal(t, float64(1), testutil.ToFloat64(r.operations.WithLabelValues("burn", "invalid")), "burn invalid")
	assert.Equal(t, float64(1500), testutil.ToFloat64(r.supply), "supply")
	assert.Equal(t, float64(3), testutil.ToFloat64(r.assets), "assets")

	families, err := r.Registry().Gather()
	require.Nil(t, err, "gather error")

	found := false
	for _, f := range families {
		if "ledger_events_dropped_total" == f.GetName() {
			found = true
			require.Len(t, f.GetMetric(), 1, "dropped metric count")
			assert.Equal(t, float64(7), f.GetMetric()[0].GetCounter().GetValue(), "dropped value")
		}
	}
	assert.True(t, found, "dropped counter not registered")
}

func TestRecorderWithoutDropped(t *testing.T) {
	r := New(nil)

	families, err := r.Registry().Gather()
	require.Nil(t, err, "gather error")
	for _, f := range families {
		assert.NotEqual(t, "ledger_events_dropped_total", f.GetName(), "unexpected dropped counter")
	}
}

func TestServerDisabled(t *testing.T) {
	s, err := NewServer(&Configuration{}, New(nil))
	assert.Nil(t, err, "error")
	assert.Nil(t, s, "server should not be created")
}

func TestServerInvalidAddress(t *testing.T) {
	_, err := NewServer(&Configuration{Listen: "localhost"}, New(nil))
	assert.Equal(t, fault.ErrInvalidIpAddress, err, "wrong error")
}

func TestServer(t *testing.T) {
	r := New(nil)
	r.Supply(42)

	// bind a free port first so the address is known
	s, err := newTestServer(r)
	require.Nil(t, err, "server error")

	bg := background.Start(background.Processes{s}, nil)
	defer bg.Stop()

	response, err := http.Get("http://" + s.Addr().String() + "/ledger")
	require.Nil(t, err, "get error")
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode, "status")
	body, err := ioutil.ReadAll(response.Body)
	require.Nil(t, err, "read error")
	assert.True(t, strings.Contains(string(body), "ledger_total_supply 42"), "supply missing from:\n%s", body)
}

// try a few ports; the configuration form needs an explicit one
func newTestServer(r *Recorder) (*Server, error) {
	var err error
	for _, address := range []string{"127.0.0.1:29341", "127.0.0.1:29342", "127.0.0.1:29343"} {
		var s *Server
		s, err = NewServer(&Configuration{Listen: address, Path: "/ledger"}, r)
		if nil == err {
			return s, nil
		}
	}
	return nil, err
}
