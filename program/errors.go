// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInstruction  = errors.New("malformed instruction")
	ErrUnknownInstruction    = errors.New("unknown instruction")
	ErrAccountCreationFailed = errors.New("account creation failed")
	ErrCorruptState          = errors.New("corrupt state")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotEnoughAccounts     = errors.New("not enough accounts")
	ErrInvalidAllocator      = errors.New("invalid allocator account")

	ErrAccountClosed = fmt.Errorf("%w: account closed", ErrUnauthorized)
)
