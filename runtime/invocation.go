// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
)

var _ program.Host = (*invocation)(nil)

const programLogPrefix = "Program log: "

// invocation is the host side of a single program call.
type invocation struct {
	r         *Runtime
	mu        state.Mutable
	programID codec.Address
	metas     []account.Meta

	// accounts are handed to the program. loaded holds them as read from
	// storage and pre as last approved by the host.
	accounts []*account.Info
	loaded   []*account.Info
	pre      []*account.Info

	logs    []string
	created int
}

func newInvocation(
	ctx context.Context,
	r *Runtime,
	mu state.Mutable,
	ix *Instruction,
) (*invocation, error) {
	inv := &invocation{
		r:         r,
		mu:        mu,
		programID: ix.ProgramID,
		metas:     ix.Accounts,
		accounts:  make([]*account.Info, len(ix.Accounts)),
		loaded:    make([]*account.Info, len(ix.Accounts)),
		pre:       make([]*account.Info, len(ix.Accounts)),
	}
	for i, meta := range ix.Accounts {
		info, _, err := storage.GetAccount(ctx, mu, meta.Key)
		if err != nil {
			return nil, err
		}
		info.IsSigner = meta.IsSigner
		info.IsWritable = meta.IsWritable
		inv.accounts[i] = info
		inv.loaded[i] = info.Clone()
		inv.pre[i] = info.Clone()
	}
	return inv, nil
}

func (inv *invocation) MinimumBalance(space uint64) uint64 {
	return inv.r.cfg.Rent.MinimumBalance(space)
}

func (inv *invocation) CreateAccount(
	_ context.Context,
	payer *account.Info,
	newAccount *account.Info,
	lamports uint64,
	space uint64,
	owner codec.Address,
) error {
	payerIndex, err := inv.index(payer)
	if err != nil {
		return err
	}
	newIndex, err := inv.index(newAccount)
	if err != nil {
		return err
	}
	// Changes made before the call would otherwise become the new baseline.
	if err := inv.verifyAccount(payerIndex); err != nil {
		return err
	}
	if err := inv.verifyAccount(newIndex); err != nil {
		return err
	}
	if err := createAccount(payer, newAccount, lamports, space, owner); err != nil {
		return err
	}
	inv.pre[payerIndex] = payer.Clone()
	inv.pre[newIndex] = newAccount.Clone()
	inv.created++
	inv.r.log.Debug("account created",
		zap.Stringer("payer", payer.Key),
		zap.Stringer("account", newAccount.Key),
		zap.Uint64("lamports", lamports),
		zap.Uint64("space", space),
		zap.Stringer("owner", owner),
	)
	return nil
}

func (inv *invocation) Log(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	inv.logs = append(inv.logs, programLogPrefix+msg)
	inv.r.log.Debug("program log",
		zap.Stringer("program", inv.programID),
		zap.String("msg", msg),
	)
}

func (inv *invocation) index(info *account.Info) (int, error) {
	for i, a := range inv.accounts {
		if a == info {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownAccount, info.Key)
}

// verify checks that the program only changed what it may: the data of
// writable accounts it owns.
func (inv *invocation) verify() error {
	for i := range inv.accounts {
		if err := inv.verifyAccount(i); err != nil {
			return err
		}
	}
	return nil
}

func (inv *invocation) verifyAccount(i int) error {
	info, pre, meta := inv.accounts[i], inv.pre[i], inv.metas[i]
	if info.Key != meta.Key ||
		info.IsSigner != meta.IsSigner ||
		info.IsWritable != meta.IsWritable ||
		info.Lamports != pre.Lamports ||
		info.Owner != pre.Owner ||
		info.Executable != pre.Executable {
		return fmt.Errorf("%w: %s", ErrIllegalModification, meta.Key)
	}
	if bytes.Equal(info.Data, pre.Data) {
		return nil
	}
	if !meta.IsWritable {
		return fmt.Errorf("%w: %s", ErrReadonlyModified, meta.Key)
	}
	if pre.Owner != inv.programID {
		return fmt.Errorf("%w: %s", ErrExternalDataModified, meta.Key)
	}
	if len(info.Data) != len(pre.Data) {
		return fmt.Errorf("%w: %s", ErrDataSizeChanged, meta.Key)
	}
	return nil
}

// store stages every changed writable account.
func (inv *invocation) store(ctx context.Context) error {
	for i, info := range inv.accounts {
		if !inv.metas[i].IsWritable || info.Equal(inv.loaded[i]) {
			continue
		}
		if err := storage.SetAccount(ctx, inv.mu, info); err != nil {
			return err
		}
	}
	return nil
}
