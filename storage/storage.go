// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/countervm/pebble"
	"github.com/ava-labs/countervm/utils"
)

// New opens the ledger database under [dataDir]/[namespace].
func New(cfg pebble.Config, dataDir string, namespace string, reg prometheus.Registerer) (*pebble.Database, error) {
	path, err := utils.InitSubDirectory(dataDir, namespace)
	if err != nil {
		return nil, err
	}
	return pebble.New(path, cfg, prometheus.WrapRegistererWithPrefix(namespace+"_", reg))
}
