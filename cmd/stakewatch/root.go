// Package main provides the entry point for the stakewatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for stakewatch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakewatch",
		Short: "Terminal reports for proof-of-stake staking positions",
		Long: `stakewatch renders terminal reports for proof-of-stake staking positions:
stake lists, staker directory summaries, staged-stake previews, and wallet
account tables.

All chain state is read from a YAML snapshot file; stakewatch never talks
to a blockchain node. Point it at a snapshot with --snapshot or set the
path in a .stakewatch config file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewStakersCmd())
	cmd.AddCommand(NewAccountsCmd())
	cmd.AddCommand(NewPreviewCmd())
	cmd.AddCommand(NewConfirmCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
