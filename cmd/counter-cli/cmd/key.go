// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrInvalidArgs
	},
}

var createKeyCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a random account address",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return ErrInvalidArgs
		}
		var addr codec.Address
		if _, err := rand.Read(addr[:]); err != nil {
			return err
		}
		if len(keyFile) > 0 {
			if err := utils.SaveBytes(keyFile, addr[:]); err != nil {
				return err
			}
			utils.Outf("{{yellow}}saved to:{{/}} %s\n", keyFile)
		}
		utils.Outf("{{green}}created address:{{/}} %s\n", addr)
		return nil
	},
}

var loadKeyCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Prints the address stored in a file",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		b, err := utils.LoadBytes(args[0], consts.AddressLen)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		utils.Outf("{{green}}address:{{/}} %s\n", codec.Address(b))
		return nil
	},
}
