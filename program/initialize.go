// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"
	"fmt"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
)

// initializeCounter allocates a rent-exempt counter account funded by the
// payer and stores [initialValue] in it.
func initializeCounter(
	ctx context.Context,
	host Host,
	programID codec.Address,
	accounts *InitializeAccounts,
	initialValue uint64,
) error {
	counter, payer := accounts.Counter, accounts.Payer
	if !payer.IsSigner {
		return fmt.Errorf("%w: payer %s did not sign", ErrUnauthorized, payer.Key)
	}
	if !counter.IsWritable {
		return fmt.Errorf("%w: counter %s is not writable", ErrUnauthorized, counter.Key)
	}
	if accounts.System.Key != account.SystemProgramID {
		return fmt.Errorf("%w: %s", ErrInvalidAllocator, accounts.System.Key)
	}
	if !counter.Unused() {
		return fmt.Errorf("%w: %s already in use", ErrAccountCreationFailed, counter.Key)
	}

	lamports := host.MinimumBalance(consts.CounterAccountSize)
	if err := host.CreateAccount(
		ctx,
		payer,
		counter,
		lamports,
		consts.CounterAccountSize,
		programID,
	); err != nil {
		return fmt.Errorf("%w: %w", ErrAccountCreationFailed, err)
	}

	c := &CounterAccount{Count: initialValue}
	if err := c.Write(counter.Data); err != nil {
		return err
	}
	host.Log("Counter initialized with value: %d", initialValue)
	return nil
}
