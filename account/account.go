// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"bytes"
	"slices"

	"github.com/ava-labs/countervm/codec"
)

// SystemProgramID is the key of the host allocator. Accounts nobody has
// claimed are owned by it.
var SystemProgramID = codec.EmptyAddress

// Meta is how a transaction names an account it touches.
type Meta struct {
	Key        codec.Address `json:"key"`
	IsSigner   bool          `json:"isSigner"`
	IsWritable bool          `json:"isWritable"`
}

// Info is the host's view of an account for the duration of one
// invocation. Programs may only modify [Data] of accounts they own.
type Info struct {
	Key        codec.Address
	IsSigner   bool
	IsWritable bool

	Lamports   uint64
	Owner      codec.Address
	Executable bool
	Data       []byte
}

// Unused reports whether nobody has claimed the account yet.
func (i *Info) Unused() bool {
	return i.Lamports == 0 && len(i.Data) == 0 && i.Owner == SystemProgramID
}

// IsClosed reports whether the account has been drained. The host purges
// such accounts once the invocation commits.
func (i *Info) IsClosed() bool {
	return i.Lamports == 0
}

func (i *Info) Clone() *Info {
	c := *i
	c.Data = slices.Clone(i.Data)
	return &c
}

// Equal compares the persisted fields of two accounts.
func (i *Info) Equal(o *Info) bool {
	return i.Key == o.Key &&
		i.Lamports == o.Lamports &&
		i.Owner == o.Owner &&
		i.Executable == o.Executable &&
		bytes.Equal(i.Data, o.Data)
}
