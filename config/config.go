// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/countervm/pebble"
	"github.com/ava-labs/countervm/runtime"
	"github.com/ava-labs/countervm/trace"
)

const defaultDatabaseDir = ".counter-cli"

type Config struct {
	// Logging
	LogLevel        logging.Level `json:"logLevel"`
	LogDisplayLevel logging.Level `json:"logDisplayLevel"`

	// Storage
	DatabaseDir string        `json:"databaseDir"`
	Pebble      pebble.Config `json:"pebble"`

	// Execution
	Runtime runtime.Config `json:"runtime"`

	// Tracing
	Trace trace.Config `json:"trace"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		LogLevel:        logging.Info,
		LogDisplayLevel: logging.Error,
		DatabaseDir:     defaultDatabaseDir,
		Pebble:          pebble.NewDefaultConfig(),
		Runtime:         runtime.NewDefaultConfig(),
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			AppName:         "counter",
		},
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
