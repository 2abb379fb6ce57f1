// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/countervm/consts"
)

// Address is the 32 byte key of a ledger account.
type Address [consts.AddressLen]byte

// EmptyAddress is also the key of the system allocator.
var EmptyAddress = Address{}

// CreateAddress returns the [Address] with the same bytes as [id].
func CreateAddress(id ids.ID) Address {
	return Address(id)
}

// StringToAddress parses a hex encoded address, with or without the 0x
// prefix.
func StringToAddress(s string) (Address, error) {
	b, err := LoadHex(s, consts.AddressLen)
	if err != nil {
		return EmptyAddress, err
	}
	return Address(b), nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	addr, err := StringToAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
