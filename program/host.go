// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
)

//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mock_host.go -package=program

// Host is what the ledger runtime provides to a program during an
// invocation.
type Host interface {
	// MinimumBalance returns the lamports an account of [space] bytes must
	// hold to be exempt from rent.
	MinimumBalance(space uint64) uint64

	// CreateAccount moves [lamports] from [payer] to [newAccount], allocates
	// [space] zeroed bytes for it and assigns it to [owner]. On success both
	// infos reflect the new balances.
	CreateAccount(
		ctx context.Context,
		payer *account.Info,
		newAccount *account.Info,
		lamports uint64,
		space uint64,
		owner codec.Address,
	) error

	// Log records a diagnostic message for the invocation.
	Log(format string, args ...any)
}
