// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrDuplicateAccount     = errors.New("duplicate account")
	ErrUnknownAccount       = errors.New("account not passed to invocation")
	ErrMissingSignature     = errors.New("missing required signature")
	ErrReadonlyAccount      = errors.New("account is not writable")
	ErrAccountInUse         = errors.New("account already in use")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidSpace         = errors.New("invalid account space")
	ErrIllegalModification  = errors.New("illegal account modification")
	ErrReadonlyModified     = errors.New("readonly account data modified")
	ErrExternalDataModified = errors.New("data of account owned by another program modified")
	ErrDataSizeChanged      = errors.New("account data size changed")
	ErrNotOwner             = errors.New("account not owned by program")
)
