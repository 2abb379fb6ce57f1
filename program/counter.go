// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/countervm/consts"
)

// CounterAccount is the data stored in a counter account: exactly 8
// little-endian bytes, no header.
type CounterAccount struct {
	Count uint64
}

// Marshal uses borsh, which lays a lone u64 field out as 8 little-endian
// bytes.
func (c *CounterAccount) Marshal() ([]byte, error) {
	return borsh.Serialize(*c)
}

// Write encodes [c] into the front of [dst].
func (c *CounterAccount) Write(dst []byte) error {
	if len(dst) < consts.CounterAccountSize {
		return fmt.Errorf(
			"%w: account holds %d bytes, expected %d",
			ErrCorruptState,
			len(dst),
			consts.CounterAccountSize,
		)
	}
	b, err := c.Marshal()
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// UnmarshalCounterAccount decodes the first 8 bytes of [b].
func UnmarshalCounterAccount(b []byte) (*CounterAccount, error) {
	if len(b) < consts.CounterAccountSize {
		return nil, fmt.Errorf(
			"%w: account holds %d bytes, expected %d",
			ErrCorruptState,
			len(b),
			consts.CounterAccountSize,
		)
	}
	c := &CounterAccount{}
	if err := borsh.Deserialize(c, b[:consts.CounterAccountSize]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	return c, nil
}
