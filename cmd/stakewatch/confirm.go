package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/render"
	"github.com/stakewatch/stakewatch/internal/snapshot"
)

// NewConfirmCmd creates the confirm command.
func NewConfirmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Render the confirmation for the snapshot's last staking transaction",
		Long: `Confirm renders the post-transaction confirmation for the staking
transaction recorded in the snapshot's last_transaction field: the
receipt summary, the staking contract address, and the next steps for
the staker.

Examples:
  stakewatch confirm --snapshot snapshot.yml`,
		Args: cobra.NoArgs,
		RunE: runConfirmCmd,
	}

	addSnapshotFlags(cmd)

	return cmd
}

// runConfirmCmd executes the confirm command.
func runConfirmCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	setupLogger(cmd)

	snap, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap.LastTransaction == nil {
		return errors.New("snapshot records no last_transaction to confirm")
	}

	em := emitter.NewConsole(cmd.OutOrStdout())
	render.StakeConfirmation(em, snapshot.NewAdapter(snap), *snap.LastTransaction)
	return nil
}
