// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	instructionsProcessed prometheus.Counter
	instructionsFailed    prometheus.Counter
	accountsCreated       prometheus.Counter

	execute metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	execute, err := metric.NewAverager(
		"runtime_execute",
		"time spent executing an instruction",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		instructionsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "instructions_processed",
			Help:      "number of instructions committed",
		}),
		instructionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "instructions_failed",
			Help:      "number of instructions rejected",
		}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "accounts_created",
			Help:      "number of accounts allocated by committed instructions",
		}),
		execute: execute,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.instructionsProcessed),
		r.Register(m.instructionsFailed),
		r.Register(m.accountsCreated),
	)
	return m, errs.Err
}
