// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
	"github.com/ava-labs/countervm/trace"

	smath "github.com/ava-labs/avalanchego/utils/math"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ Program = (*program.Processor)(nil)

// Program is on-ledger logic the runtime can invoke.
type Program interface {
	Process(
		ctx context.Context,
		host program.Host,
		programID codec.Address,
		accounts []*account.Info,
		data []byte,
	) error
}

// Instruction is one program call of a transaction.
type Instruction struct {
	ProgramID codec.Address  `json:"programId"`
	Accounts  []account.Meta `json:"accounts"`
	Data      codec.Bytes    `json:"data"`
}

type Result struct {
	Logs []string `json:"logs"`
	// Accounts holds the committed state of every account of the
	// instruction, in order.
	Accounts []*account.Info `json:"-"`
}

// Runtime is a minimal ledger host. Instructions run one at a time and
// either commit all of their account changes or none.
type Runtime struct {
	cfg     *Config
	log     logging.Logger
	db      state.Database
	tracer  trace.Tracer
	metrics *metrics

	lock     sync.Mutex
	programs map[codec.Address]Program
}

func New(
	cfg *Config,
	log logging.Logger,
	db state.Database,
	tracer trace.Tracer,
	reg prometheus.Registerer,
) (*Runtime, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Runtime{
		cfg:      cfg,
		log:      log,
		db:       db,
		tracer:   tracer,
		metrics:  m,
		programs: make(map[codec.Address]Program),
	}, nil
}

func (r *Runtime) RegisterProgram(id codec.Address, p Program) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.programs[id] = p
	r.log.Info("registered program", zap.Stringer("programID", id))
}

// MinimumBalance returns the rent-exempt balance for [space] bytes.
func (r *Runtime) MinimumBalance(space uint64) uint64 {
	return r.cfg.Rent.MinimumBalance(space)
}

func (r *Runtime) Execute(ctx context.Context, ix *Instruction) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "Runtime.Execute", oteltrace.WithAttributes(
		attribute.Stringer("program", ix.ProgramID),
		attribute.Int("accounts", len(ix.Accounts)),
		attribute.Int("data", len(ix.Data)),
	))
	defer span.End()

	r.lock.Lock()
	defer r.lock.Unlock()

	start := time.Now()
	result, err := r.execute(ctx, ix)
	r.metrics.execute.Observe(float64(time.Since(start)))
	if err != nil {
		r.metrics.instructionsFailed.Inc()
		span.RecordError(err)
		r.log.Debug("instruction failed",
			zap.Stringer("program", ix.ProgramID),
			zap.Error(err),
		)
		return nil, err
	}
	r.metrics.instructionsProcessed.Inc()
	return result, nil
}

func (r *Runtime) execute(ctx context.Context, ix *Instruction) (*Result, error) {
	p, ok := r.programs[ix.ProgramID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, ix.ProgramID)
	}
	keys, err := StateKeys(ix.Accounts)
	if err != nil {
		return nil, err
	}
	mu := state.NewSimpleMutable(r.db)
	inv, err := newInvocation(ctx, r, state.NewScopedMutable(keys, mu), ix)
	if err != nil {
		return nil, err
	}
	if err := p.Process(ctx, inv, ix.ProgramID, inv.accounts, ix.Data); err != nil {
		return nil, err
	}
	if err := inv.verify(); err != nil {
		return nil, err
	}
	if err := inv.store(ctx); err != nil {
		return nil, err
	}
	if err := mu.Commit(ctx); err != nil {
		return nil, err
	}
	r.metrics.accountsCreated.Add(float64(inv.created))

	result := &Result{
		Logs:     inv.logs,
		Accounts: make([]*account.Info, len(inv.accounts)),
	}
	for i, info := range inv.accounts {
		result.Accounts[i] = info.Clone()
	}
	return result, nil
}

// StateKeys returns the storage keys an instruction may touch. Each account
// may be listed once.
func StateKeys(metas []account.Meta) (state.Keys, error) {
	keys := make(state.Keys, len(metas))
	for _, meta := range metas {
		k := string(storage.AccountKey(meta.Key))
		if _, ok := keys[k]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, meta.Key)
		}
		if meta.IsWritable {
			keys.Add(k, state.All)
		} else {
			keys.Add(k, state.Read)
		}
	}
	return keys, nil
}

func (r *Runtime) GetAccount(ctx context.Context, addr codec.Address) (*account.Info, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	info, _, err := storage.GetAccount(ctx, state.NewSimpleMutable(r.db), addr)
	return info, err
}

// Airdrop credits [lamports] to [addr] out of thin air.
func (r *Runtime) Airdrop(ctx context.Context, addr codec.Address, lamports uint64) (uint64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	mu := state.NewSimpleMutable(r.db)
	info, _, err := storage.GetAccount(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	info.Lamports, err = smath.Add(info.Lamports, lamports)
	if err != nil {
		return 0, err
	}
	if err := storage.SetAccount(ctx, mu, info); err != nil {
		return 0, err
	}
	if err := mu.Commit(ctx); err != nil {
		return 0, err
	}
	r.log.Info("airdrop",
		zap.Stringer("account", addr),
		zap.Uint64("lamports", lamports),
		zap.Uint64("balance", info.Lamports),
	)
	return info.Lamports, nil
}

// CloseAccount drains [target], which [programID] must own, into
// [recipient] and purges it.
func (r *Runtime) CloseAccount(
	ctx context.Context,
	programID codec.Address,
	target codec.Address,
	recipient codec.Address,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if target == recipient {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, target)
	}
	mu := state.NewSimpleMutable(r.db)
	closing, _, err := storage.GetAccount(ctx, mu, target)
	if err != nil {
		return err
	}
	if closing.Owner != programID || closing.IsClosed() {
		return fmt.Errorf("%w: %s", ErrNotOwner, target)
	}
	to, _, err := storage.GetAccount(ctx, mu, recipient)
	if err != nil {
		return err
	}
	to.Lamports, err = smath.Add(to.Lamports, closing.Lamports)
	if err != nil {
		return err
	}
	if err := storage.SetAccount(ctx, mu, to); err != nil {
		return err
	}
	if err := storage.DeleteAccount(ctx, mu, target); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	r.log.Info("account closed",
		zap.Stringer("account", target),
		zap.Stringer("recipient", recipient),
		zap.Uint64("lamports", closing.Lamports),
	)
	return nil
}
