// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/ledgerd/fault"
)

const (
	namespace = "ledger"
)

// result labels
const (
	resultOk         = "ok"
	resultArithmetic = "arithmetic"
	resultExists     = "exists"
	resultInvalid    = "invalid"
	resultLimit      = "limit"
	resultNotFound   = "not_found"
	resultRecord     = "record"
	resultProcess    = "process"
	resultOther      = "error"
)

// Recorder - collects ledger metrics into its own registry
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	supply     prometheus.Gauge
	assets     prometheus.Gauge
}

// New - create a recorder
//
// dropped, if not nil, is sampled for the dropped events counter
func New(dropped func() uint64) *Recorder {

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Number of ledger operations by outcome",
			},
			[]string{"operation", "result"},
		),
		supply: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "total_supply",
				Help:      "Current total supply",
			},
		),
		assets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "assets_created",
				Help:      "Number of assets created",
			},
		),
	}

	r.registry.MustRegister(
		r.operations,
		r.supply,
		r.assets,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	if nil != dropped {
		r.registry.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_dropped_total",
				Help:      "Events discarded because the publishing queue was full",
			},
			func() float64 {
				return float64(dropped())
			},
		))
	}

	return r
}

// Registry - the gatherer for the HTTP handler
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Operation - count one operation outcome
func (r *Recorder) Operation(name string, err error) {
	r.operations.WithLabelValues(name, resultOf(err)).Inc()
}

// Supply - set the total supply gauge
func (r *Recorder) Supply(total uint64) {
	r.supply.Set(float64(total))
}

// Assets - set the created assets gauge
func (r *Recorder) Assets(created uint64) {
	r.assets.Set(float64(created))
}

func resultOf(err error) string {
	switch {
	case nil == err:
		return resultOk
	case fault.IsErrArithmetic(err):
		return resultArithmetic
	case fault.IsErrExists(err):
		return resultExists
	case fault.IsErrInvalid(err):
		return resultInvalid
	case fault.IsErrLimit(err):
		return resultLimit
	case fault.IsErrNotFound(err):
		return resultNotFound
	case fault.IsErrRecord(err):
		return resultRecord
	case fault.IsErrProcess(err):
		return resultProcess
	default:
		return resultOther
	}
}
