// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
)

const (
	initializeAccountsLen = 3
	incrementAccountsLen  = 1
)

// InitializeAccounts are the accounts an [InitializeCounter] expects, in
// transaction order.
type InitializeAccounts struct {
	Counter *account.Info
	Payer   *account.Info
	System  *account.Info
}

func NewInitializeAccounts(accounts []*account.Info) (*InitializeAccounts, error) {
	if len(accounts) < initializeAccountsLen {
		return nil, fmt.Errorf(
			"%w: initialize needs %d, got %d",
			ErrNotEnoughAccounts,
			initializeAccountsLen,
			len(accounts),
		)
	}
	return &InitializeAccounts{
		Counter: accounts[0],
		Payer:   accounts[1],
		System:  accounts[2],
	}, nil
}

// InitializeMetas returns the account list a client attaches to an
// [InitializeCounter]. Both the new account and the payer sign.
func InitializeMetas(counter, payer codec.Address) []account.Meta {
	return []account.Meta{
		{Key: counter, IsSigner: true, IsWritable: true},
		{Key: payer, IsSigner: true, IsWritable: true},
		{Key: account.SystemProgramID},
	}
}

// IncrementAccounts are the accounts an [IncrementCounter] expects.
type IncrementAccounts struct {
	Counter *account.Info
}

func NewIncrementAccounts(accounts []*account.Info) (*IncrementAccounts, error) {
	if len(accounts) < incrementAccountsLen {
		return nil, fmt.Errorf(
			"%w: increment needs %d, got %d",
			ErrNotEnoughAccounts,
			incrementAccountsLen,
			len(accounts),
		)
	}
	return &IncrementAccounts{Counter: accounts[0]}, nil
}

// IncrementMetas returns the account list a client attaches to an
// [IncrementCounter].
func IncrementMetas(counter codec.Address) []account.Meta {
	return []account.Meta{
		{Key: counter, IsWritable: true},
	}
}
