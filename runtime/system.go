// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// createAccount is the system allocator. It either applies every change or
// none.
func createAccount(
	payer *account.Info,
	newAccount *account.Info,
	lamports uint64,
	space uint64,
	owner codec.Address,
) error {
	if !payer.IsSigner {
		return fmt.Errorf("%w: payer %s", ErrMissingSignature, payer.Key)
	}
	if !newAccount.IsSigner {
		return fmt.Errorf("%w: new account %s", ErrMissingSignature, newAccount.Key)
	}
	if !payer.IsWritable {
		return fmt.Errorf("%w: payer %s", ErrReadonlyAccount, payer.Key)
	}
	if !newAccount.IsWritable {
		return fmt.Errorf("%w: new account %s", ErrReadonlyAccount, newAccount.Key)
	}
	if payer.Key == newAccount.Key {
		return fmt.Errorf("%w: payer funds itself", ErrAccountInUse)
	}
	if !newAccount.Unused() {
		return fmt.Errorf("%w: %s", ErrAccountInUse, newAccount.Key)
	}
	if space > consts.MaxAccountDataLen {
		return fmt.Errorf("%w: %d > %d", ErrInvalidSpace, space, consts.MaxAccountDataLen)
	}
	payerBalance, err := smath.Sub(payer.Lamports, lamports)
	if err != nil {
		return fmt.Errorf(
			"%w: payer %s holds %d, needs %d",
			ErrInsufficientFunds,
			payer.Key,
			payer.Lamports,
			lamports,
		)
	}
	newBalance, err := smath.Add(newAccount.Lamports, lamports)
	if err != nil {
		return err
	}

	payer.Lamports = payerBalance
	newAccount.Lamports = newBalance
	newAccount.Data = make([]byte, space)
	newAccount.Owner = owner
	return nil
}
