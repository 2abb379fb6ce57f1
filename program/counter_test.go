// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/consts"
)

func TestCounterAccountLayout(t *testing.T) {
	require := require.New(t)

	b, err := (&CounterAccount{Count: 0x0102030405060708}).Marshal()
	require.NoError(err)
	require.Equal([]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b)
}

func TestCounterAccountRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("decode(encode(v)) == v", prop.ForAll(
		func(v uint64) bool {
			b, err := (&CounterAccount{Count: v}).Marshal()
			if err != nil || len(b) != consts.CounterAccountSize {
				return false
			}
			c, err := UnmarshalCounterAccount(b)
			return err == nil && c.Count == v
		},
		gen.UInt64(),
	))
	properties.Property("encode(decode(b)) == b", prop.ForAll(
		func(b []byte) bool {
			c, err := UnmarshalCounterAccount(b)
			if err != nil {
				return false
			}
			out, err := c.Marshal()
			return err == nil && string(out) == string(b)
		},
		gen.SliceOfN(consts.CounterAccountSize, gen.UInt8()),
	))
	properties.TestingRun(t)
}

func TestUnmarshalCounterAccountShort(t *testing.T) {
	for size := 0; size < consts.CounterAccountSize; size++ {
		_, err := UnmarshalCounterAccount(make([]byte, size))
		require.ErrorIs(t, err, ErrCorruptState)
	}
}

func TestUnmarshalCounterAccountReadsPrefix(t *testing.T) {
	require := require.New(t)

	c, err := UnmarshalCounterAccount([]byte{6, 0, 0, 0, 0, 0, 0, 0, 0xff})
	require.NoError(err)
	require.Equal(uint64(6), c.Count)
}

func TestCounterAccountWrite(t *testing.T) {
	require := require.New(t)

	require.ErrorIs((&CounterAccount{Count: 1}).Write(make([]byte, 7)), ErrCorruptState)

	dst := make([]byte, consts.CounterAccountSize)
	require.NoError((&CounterAccount{Count: 1}).Write(dst))
	require.Equal([]byte{1, 0, 0, 0, 0, 0, 0, 0}, dst)
}
