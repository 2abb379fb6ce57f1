// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/countervm/utils"
)

const (
	defaultDatabase = ".counter-cli"
	defaultLogLevel = "info"
)

var (
	handler *Handler

	dbPath     string
	configFile string
	logLevel   string
	keyFile    string
	seed       string
	skipPrompt bool

	rootCmd = &cobra.Command{
		Use:        "counter-cli",
		Short:      "Counter program CLI",
		SuggestFor: []string{"counter-cli", "countercli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		accountCmd,
		counterCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&dbPath,
		"database",
		defaultDatabase,
		"path to database (will create it missing)",
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"path to a JSON config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		defaultLogLevel,
		"log level",
	)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Parent() == keyCmd {
			return nil
		}
		utils.Outf("{{yellow}}database:{{/}} %s\n", dbPath)
		h, err := NewHandler(dbPath, configFile, logLevel)
		if err != nil {
			return err
		}
		handler = h
		return nil
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		if handler == nil {
			return nil
		}
		return handler.Close()
	}
	rootCmd.SilenceErrors = true

	// key
	createKeyCmd.PersistentFlags().StringVar(
		&keyFile,
		"file",
		"",
		"write the address to this file",
	)
	keyCmd.AddCommand(
		createKeyCmd,
		loadKeyCmd,
	)

	// account
	accountCmd.AddCommand(
		airdropAccountCmd,
		showAccountCmd,
	)

	// counter
	initCounterCmd.PersistentFlags().StringVar(
		&seed,
		"seed",
		"",
		"seed the counter address is derived from (random if empty)",
	)
	closeCounterCmd.PersistentFlags().BoolVar(
		&skipPrompt,
		"yes",
		false,
		"close without asking for confirmation",
	)
	counterCmd.AddCommand(
		initCounterCmd,
		incrementCounterCmd,
		getCounterCmd,
		closeCounterCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}
