// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/utils"
)

var accountCmd = &cobra.Command{
	Use: "account",
	RunE: func(*cobra.Command, []string) error {
		return ErrInvalidArgs
	},
}

var airdropAccountCmd = &cobra.Command{
	Use:   "airdrop [address] [amount]",
	Short: "Funds an account with [amount] native units",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		amount, err := utils.ParseBalance(args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		balance, err := handler.Runtime().Airdrop(context.Background(), addr, amount)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}balance:{{/}} %s\n", utils.FormatBalance(balance))
		return nil
	},
}

var showAccountCmd = &cobra.Command{
	Use:   "show [address]",
	Short: "Prints an account",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		info, err := handler.Runtime().GetAccount(context.Background(), addr)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}address:{{/}} %s\n{{yellow}}balance:{{/}} %s\n{{yellow}}owner:{{/}} %s\n{{yellow}}executable:{{/}} %t\n{{yellow}}data:{{/}} %s\n",
			info.Key,
			utils.FormatBalance(info.Lamports),
			info.Owner,
			info.Executable,
			codec.ToHex(info.Data),
		)
		return nil
	},
}

func parseAddress(s string) (codec.Address, error) {
	addr, err := codec.StringToAddress(s)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return addr, nil
}
