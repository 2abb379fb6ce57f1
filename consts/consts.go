// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen    = 1
	BoolLen    = 1
	IDLen      = 32
	AddressLen = 32
	IntLen     = 4
	Uint64Len  = 8
	MaxUint64  = ^uint64(0)

	// MaxAccountDataLen caps the storage the system allocator hands out for
	// a single account.
	MaxAccountDataLen = 10 * 1024 * 1024
)

// Instruction tags of the counter program.
const (
	InitializeCounterID uint8 = 0
	IncrementCounterID  uint8 = 1
)

// CounterAccountSize is the exact storage footprint of a counter account.
const CounterAccountSize = Uint64Len
