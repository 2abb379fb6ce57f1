// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/runtime"
	"github.com/ava-labs/countervm/utils"
)

const randomSeedLen = 16

var counterCmd = &cobra.Command{
	Use: "counter",
	RunE: func(*cobra.Command, []string) error {
		return ErrInvalidArgs
	},
}

var initCounterCmd = &cobra.Command{
	Use:   "init [payer] [value]",
	Short: "Creates a counter funded by [payer] holding [value]",
	Long: `Creates a counter funded by [payer] holding [value].

The local ledger verifies no signatures: [payer] is marked as a signer as
given, so any funded account can pay for a counter.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		payer, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		s := []byte(seed)
		if len(s) == 0 {
			s = make([]byte, randomSeedLen)
			if _, err := rand.Read(s); err != nil {
				return err
			}
		}
		counter := program.DeriveAddress(program.ID, payer, s)
		result, err := handler.Runtime().Execute(context.Background(), &runtime.Instruction{
			ProgramID: program.ID,
			Accounts:  program.InitializeMetas(counter, payer),
			Data:      (&program.InitializeCounter{InitialValue: value}).Marshal(),
		})
		if err != nil {
			return err
		}
		printLogs(result)
		utils.Outf("{{green}}counter:{{/}} %s\n", counter)
		return nil
	},
}

var incrementCounterCmd = &cobra.Command{
	Use:   "increment [counter]",
	Short: "Adds one to a counter",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		counter, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		result, err := handler.Runtime().Execute(context.Background(), &runtime.Instruction{
			ProgramID: program.ID,
			Accounts:  program.IncrementMetas(counter),
			Data:      (&program.IncrementCounter{}).Marshal(),
		})
		if err != nil {
			return err
		}
		printLogs(result)
		return nil
	},
}

var getCounterCmd = &cobra.Command{
	Use:   "get [counter]",
	Short: "Prints the value of a counter",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		counter, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		info, err := handler.Runtime().GetAccount(context.Background(), counter)
		if err != nil {
			return err
		}
		if info.Owner != program.ID {
			return fmt.Errorf("%w: %s is not a counter", program.ErrUnauthorized, counter)
		}
		c, err := program.UnmarshalCounterAccount(info.Data)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}count:{{/}} %d\n", c.Count)
		return nil
	},
}

var closeCounterCmd = &cobra.Command{
	Use:   "close [counter] [recipient]",
	Short: "Closes a counter and refunds its balance to [recipient]",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		counter, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		recipient, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		if !skipPrompt {
			cont, err := promptBool(fmt.Sprintf("close %s", counter))
			if err != nil {
				return err
			}
			if !cont {
				return ErrAborted
			}
		}
		if err := handler.Runtime().CloseAccount(context.Background(), program.ID, counter, recipient); err != nil {
			return err
		}
		utils.Outf("{{green}}closed:{{/}} %s\n", counter)
		return nil
	},
}

func printLogs(result *runtime.Result) {
	for _, l := range result.Logs {
		utils.Outf("{{cyan}}%s{{/}}\n", l)
	}
}
