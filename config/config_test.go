// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/pebble"
	"github.com/ava-labs/countervm/runtime"
)

func TestNewDefaults(t *testing.T) {
	require := require.New(t)

	c, err := New(nil)
	require.NoError(err)
	require.Equal(logging.Info, c.LogLevel)
	require.Equal(defaultDatabaseDir, c.DatabaseDir)
	require.Equal(pebble.NewDefaultConfig(), c.Pebble)
	require.Equal(runtime.NewDefaultConfig(), c.Runtime)
	require.False(c.Trace.Enabled)
}

func TestNewOverrides(t *testing.T) {
	require := require.New(t)

	c, err := New([]byte(`{
		"logLevel": "debug",
		"databaseDir": "/tmp/counter",
		"pebble": {"sync": false},
		"runtime": {"rent": {"lamportsPerByteYear": 1}},
		"trace": {"enabled": true, "traceSampleRate": 0.5}
	}`))
	require.NoError(err)
	require.Equal(logging.Debug, c.LogLevel)
	require.Equal("/tmp/counter", c.DatabaseDir)
	require.False(c.Pebble.Sync)
	require.Equal(pebble.NewDefaultConfig().CacheSize, c.Pebble.CacheSize)
	require.Equal(uint64(1), c.Runtime.Rent.LamportsPerByteYear)
	require.Equal(uint64(128), c.Runtime.Rent.AccountStorageOverhead)
	require.True(c.Trace.Enabled)
	require.Equal(0.5, c.Trace.TraceSampleRate)
}

func TestNewInvalid(t *testing.T) {
	_, err := New([]byte(`{"logLevel": 7`))
	require.Error(t, err)
}
