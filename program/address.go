// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
)

// ID is the address the counter program is deployed at.
var ID = codec.Address(hashing.ComputeHash256Array([]byte("counter")))

// DeriveAddress returns a deterministic address for a counter created by
// [payer] under [programID]. Distinct seeds give distinct counters.
func DeriveAddress(programID codec.Address, payer codec.Address, seed []byte) codec.Address {
	b := make([]byte, 0, 2*consts.AddressLen+len(seed))
	b = append(b, programID[:]...)
	b = append(b, payer[:]...)
	b = append(b, seed...)
	return codec.Address(hashing.ComputeHash256Array(b))
}
