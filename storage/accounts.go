// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"
)

// State
// 0x0/ (accounts)
//   -> [address] => account record

const accountPrefix byte = 0x0

var ErrCorruptRecord = errors.New("corrupt account record")

// record is the persisted form of an account.
type record struct {
	Lamports   uint64
	Owner      [consts.AddressLen]byte
	Executable bool
	Data       []byte
}

// [accountPrefix] + [address]
func AccountKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+consts.AddressLen)
	k[0] = accountPrefix
	copy(k[1:], addr[:])
	return k
}

// GetAccount returns the stored account at [addr]. An address nobody has
// funded yields an unused, system-owned account and false.
func GetAccount(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*account.Info, bool, error) {
	v, err := im.GetValue(ctx, AccountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return &account.Info{
			Key:   addr,
			Owner: account.SystemProgramID,
		}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var r record
	if err := borsh.Deserialize(&r, v); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrCorruptRecord, addr, err)
	}
	return &account.Info{
		Key:        addr,
		Lamports:   r.Lamports,
		Owner:      r.Owner,
		Executable: r.Executable,
		Data:       r.Data,
	}, true, nil
}

// SetAccount stores [info]. Accounts drained of lamports are removed.
func SetAccount(
	ctx context.Context,
	mu state.Mutable,
	info *account.Info,
) error {
	if info.Lamports == 0 {
		return DeleteAccount(ctx, mu, info.Key)
	}
	v, err := borsh.Serialize(record{
		Lamports:   info.Lamports,
		Owner:      info.Owner,
		Executable: info.Executable,
		Data:       info.Data,
	})
	if err != nil {
		return err
	}
	return mu.Insert(ctx, AccountKey(info.Key), v)
}

func DeleteAccount(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
) error {
	return mu.Remove(ctx, AccountKey(addr))
}
