// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
)

// Processor is the counter program. It keeps no state between calls; all
// state lives in the accounts handed to [Process].
type Processor struct{}

func New() *Processor {
	return &Processor{}
}

// Process decodes [data] and runs the instruction against [accounts].
// Any error aborts the invocation and the host discards every change made
// to [accounts].
func (*Processor) Process(
	ctx context.Context,
	host Host,
	programID codec.Address,
	accounts []*account.Info,
	data []byte,
) error {
	instruction, err := ParseInstruction(data)
	if err != nil {
		return err
	}

	switch ix := instruction.(type) {
	case *InitializeCounter:
		accts, err := NewInitializeAccounts(accounts)
		if err != nil {
			return err
		}
		return initializeCounter(ctx, host, programID, accts, ix.InitialValue)
	case *IncrementCounter:
		accts, err := NewIncrementAccounts(accounts)
		if err != nil {
			return err
		}
		return incrementCounter(host, programID, accts)
	default:
		return ErrUnknownInstruction
	}
}
