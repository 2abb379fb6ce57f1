// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/countervm/state"
)

var (
	_ state.Database = (*Database)(nil)
	_ database.Batch = (*batch)(nil)
)

type Config struct {
	CacheSize                   int  `json:"cacheSize"`
	BytesPerSync                int  `json:"bytesPerSync"`
	MemTableStopWritesThreshold int  `json:"memTableStopWritesThreshold"`
	MemTableSize                int  `json:"memTableSize"`
	MaxOpenFiles                int  `json:"maxOpenFiles"`
	Sync                        bool `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                units.MiB,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                1_024,
		Sync:                        true,
	}
}

// Database persists committed ledger state on disk.
type Database struct {
	db           *pebble.DB
	metrics      *metrics
	writeOptions *pebble.WriteOptions

	closed  utils.Atomic[bool]
	closing chan struct{}
	wg      sync.WaitGroup
}

func New(file string, cfg Config, reg prometheus.Registerer) (*Database, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	d := &Database{
		metrics: m,
		closing: make(chan struct{}),
	}
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync:                cfg.BytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
	}
	opts.EventListener = &pebble.EventListener{
		CompactionBegin: d.onCompactionBegin,
		CompactionEnd:   d.onCompactionEnd,
		WriteStallBegin: d.onWriteStallBegin,
		WriteStallEnd:   d.onWriteStallEnd,
	}
	d.db, err = pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}
	if cfg.Sync {
		d.writeOptions = pebble.Sync
	} else {
		d.writeOptions = pebble.NoSync
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.collectMetrics()
	}()
	return d, nil
}

func (d *Database) Has(key []byte) (bool, error) {
	if d.closed.Get() {
		return false, database.ErrClosed
	}
	_, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (d *Database) Get(key []byte) ([]byte, error) {
	if d.closed.Get() {
		return nil, database.ErrClosed
	}
	start := time.Now()
	data, closer, err := d.db.Get(key)
	d.metrics.getLatency.Observe(float64(time.Since(start)))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ret := slices.Clone(data)
	return ret, closer.Close()
}

func (d *Database) Put(key []byte, value []byte) error {
	if d.closed.Get() {
		return database.ErrClosed
	}
	return d.db.Set(key, value, d.writeOptions)
}

func (d *Database) Delete(key []byte) error {
	if d.closed.Get() {
		return database.ErrClosed
	}
	return d.db.Delete(key, d.writeOptions)
}

func (d *Database) NewBatch() database.Batch {
	return &batch{d: d}
}

func (d *Database) Close() error {
	if d.closed.Get() {
		return database.ErrClosed
	}
	d.closed.Set(true)
	close(d.closing)
	d.wg.Wait()
	return d.db.Close()
}

// batch records operations and applies them in one pebble batch on
// [Write].
type batch struct {
	database.BatchOps

	d *Database
}

func (b *batch) Write() error {
	if b.d.closed.Get() {
		return database.ErrClosed
	}
	pb := b.d.db.NewBatch()
	defer pb.Close()

	for _, op := range b.Ops {
		var err error
		if op.Delete {
			err = pb.Delete(op.Key, nil)
		} else {
			err = pb.Set(op.Key, op.Value, nil)
		}
		if err != nil {
			return err
		}
	}
	return pb.Commit(b.d.writeOptions)
}

func (b *batch) Inner() database.Batch {
	return b
}
