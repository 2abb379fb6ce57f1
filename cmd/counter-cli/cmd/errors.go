// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs    = errors.New("invalid args")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInputEmpty     = errors.New("input is empty")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrAborted        = errors.New("aborted")
)
