// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"os"
	"path"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/config"
	"github.com/ava-labs/countervm/pebble"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/runtime"
	"github.com/ava-labs/countervm/storage"
	"github.com/ava-labs/countervm/trace"
)

const (
	ledgerNamespace = "ledger"
	logsDir         = "logs"
)

// Handler owns everything a command needs to talk to the local ledger.
type Handler struct {
	cfg        *config.Config
	logFactory *logFactory
	log        logging.Logger
	db         *pebble.Database
	tracer     trace.Tracer
	rt         *runtime.Runtime
}

func NewHandler(dbPath string, configFile string, level string) (*Handler, error) {
	var raw []byte
	if len(configFile) > 0 {
		b, err := os.ReadFile(configFile)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	cfg, err := config.New(raw)
	if err != nil {
		return nil, err
	}
	if len(dbPath) > 0 {
		cfg.DatabaseDir = dbPath
	}
	cfg.LogLevel, err = logging.ToLevel(level)
	if err != nil {
		return nil, err
	}

	h := &Handler{cfg: cfg}
	h.logFactory = newLogFactory(logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   8,
			MaxFiles:  4,
			MaxAge:    7,
			Directory: path.Join(cfg.DatabaseDir, logsDir),
		},
		LogLevel:     cfg.LogLevel,
		DisplayLevel: cfg.LogDisplayLevel,
		LogFormat:    logging.JSON,
	})
	h.log, err = h.logFactory.Make("counter-cli")
	if err != nil {
		h.logFactory.Close()
		return nil, err
	}

	h.tracer, err = trace.New(&cfg.Trace)
	if err != nil {
		return nil, errors.Join(err, h.Close())
	}
	registry := prometheus.NewRegistry()
	h.db, err = storage.New(cfg.Pebble, cfg.DatabaseDir, ledgerNamespace, registry)
	if err != nil {
		return nil, errors.Join(err, h.Close())
	}
	h.rt, err = runtime.New(&cfg.Runtime, h.log, h.db, h.tracer, registry)
	if err != nil {
		return nil, errors.Join(err, h.Close())
	}
	h.rt.RegisterProgram(program.ID, program.New())
	h.log.Debug("handler initialized",
		zap.String("database", cfg.DatabaseDir),
		zap.Stringer("logLevel", cfg.LogLevel),
	)
	return h, nil
}

func (h *Handler) Runtime() *runtime.Runtime {
	return h.rt
}

func (h *Handler) Close() error {
	var errs []error
	if h.db != nil {
		errs = append(errs, h.db.Close())
	}
	if h.tracer != nil {
		errs = append(errs, h.tracer.Close())
	}
	if h.logFactory != nil {
		h.logFactory.Close()
	}
	return errors.Join(errs...)
}
