package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/render"
)

// NewStakersCmd creates the stakers command.
func NewStakersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakers [address...]",
		Short: "Render the staker directory",
		Long: `Stakers renders one directory entry per staker: nickname with colored
symbols, owned and staked token amounts, restaking and winding-down
state, activity status for the current period, worker assignment, and
policy fee information.

Without arguments, every staker in the snapshot is shown. Pass one or
more staker addresses to restrict the directory.

Examples:
  # Directory of all stakers
  stakewatch stakers --snapshot snapshot.yml

  # One staker only
  stakewatch stakers --snapshot snapshot.yml 0x1111111111111111111111111111111111111111`,
		Args: cobra.ArbitraryArgs,
		RunE: runStakersCmd,
	}

	addSnapshotFlags(cmd)

	return cmd
}

// runStakersCmd executes the stakers command.
func runStakersCmd(cmd *cobra.Command, args []string) error {
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

	addresses := args
	if len(addresses) == 0 {
		addresses = adapter.Addresses()
	}

	em := emitter.NewConsole(cmd.OutOrStdout())
	render.StakerDirectory(em, addresses, adapter, adapter)
	return nil
}
