package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/render"
)

// NewAccountsCmd creates the accounts command.
func NewAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Render the wallet account balance table",
		Long: `Accounts renders one row per wallet account with its ETH and NU
balances and whether the account currently stakes.

Examples:
  stakewatch accounts --snapshot snapshot.yml`,
		Args: cobra.NoArgs,
		RunE: runAccountsCmd,
	}

	addSnapshotFlags(cmd)

	return cmd
}

// runAccountsCmd executes the accounts command.
func runAccountsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	setupLogger(cmd)

	adapter, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	em := emitter.NewConsole(cmd.OutOrStdout())
	render.AccountTable(em, adapter, adapter, adapter)
	return nil
}
