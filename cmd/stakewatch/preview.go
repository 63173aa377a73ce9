package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/render"
	"github.com/stakewatch/stakewatch/internal/snapshot"
	"github.com/stakewatch/stakewatch/internal/token"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a staged stake before it is submitted",
		Long: `Preview renders a boxed summary of a stake that is staged but not yet
submitted: chain identity, value in both token denominations, lock
duration, and enactment/expiration timestamps.

With --divide, preview shows the effect of dividing an existing stake
instead: the split-off value keeps the original enactment period and
runs --extend periods past the original termination.

Examples:
  # Preview a new 30,000 NU stake locked for 30 periods
  stakewatch preview --snapshot snapshot.yml --value 30000 --periods 30

  # Preview dividing stake #0 of a staker, extending 5 periods
  stakewatch preview --snapshot snapshot.yml \
    --staker 0x1111111111111111111111111111111111111111 \
    --divide 0 --target-value 15000 --extend 5`,
		Args: cobra.NoArgs,
		RunE: runPreviewCmd,
	}

	cmd.Flags().String("staker", "",
		"Staker address the stake belongs to (default: first staker in the snapshot)")
	cmd.Flags().Int64("value", 0,
		"Stake value in whole NU")
	cmd.Flags().Int("periods", 0,
		"Lock duration in periods")
	cmd.Flags().Int("start-period", 0,
		"Period the lock takes effect (default: the period after the current one)")
	cmd.Flags().Int("divide", -1,
		"Index of an existing stake to divide instead of staging a new one")
	cmd.Flags().Int64("target-value", 0,
		"Value in whole NU to split off when dividing")
	cmd.Flags().Int("extend", 0,
		"Periods to extend the split-off stake past the original termination")
	addSnapshotFlags(cmd)

	return cmd
}

// runPreviewCmd executes the preview command.
func runPreviewCmd(cmd *cobra.Command, _ []string) error {
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

	staker, err := cmd.Flags().GetString("staker")
	if err != nil {
		return err
	}
	if staker == "" {
		addresses := adapter.Addresses()
		if len(addresses) == 0 {
			return errors.New("snapshot contains no stakers; specify --staker")
		}
		staker = addresses[0]
	}

	divideIndex, err := cmd.Flags().GetInt("divide")
	if err != nil {
		return err
	}

	em := emitter.NewConsole(cmd.OutOrStdout())

	if divideIndex >= 0 {
		return previewDivision(cmd, em, adapter, staker, divideIndex)
	}
	return previewNewStake(cmd, em, adapter, staker)
}

// previewNewStake renders a staged-stake preview from the value and
// duration flags.
func previewNewStake(cmd *cobra.Command, em emitter.Emitter, adapter *snapshot.Adapter, staker string) error {
	value, err := cmd.Flags().GetInt64("value")
	if err != nil {
		return err
	}
	if value <= 0 {
		return errors.New("--value must be a positive whole NU amount")
	}

	periods, err := cmd.Flags().GetInt("periods")
	if err != nil {
		return err
	}
	if periods <= 0 {
		return errors.New("--periods must be positive")
	}

	startPeriod, err := cmd.Flags().GetInt("start-period")
	if err != nil {
		return err
	}
	if startPeriod == 0 {
		// A new stake cannot take effect before the next period.
		startPeriod = adapter.CurrentPeriod() + 1
	}

	render.StagedStake(em, adapter.Environment(), render.StagedParams{
		StakerAddress: staker,
		Value:         token.FromNU(value),
		LockPeriods:   periods,
		StartPeriod:   startPeriod,
		UnlockPeriod:  startPeriod + periods,
	})
	return nil
}

// previewDivision renders a division preview for an existing stake.
func previewDivision(cmd *cobra.Command, em emitter.Emitter, adapter *snapshot.Adapter, staker string, index int) error {
	targetValue, err := cmd.Flags().GetInt64("target-value")
	if err != nil {
		return err
	}
	if targetValue <= 0 {
		return errors.New("--target-value must be a positive whole NU amount")
	}

	extend, err := cmd.Flags().GetInt("extend")
	if err != nil {
		return err
	}
	if extend < 0 {
		return errors.New("--extend must be non-negative")
	}

	for _, stake := range adapter.Stakes(staker) {
		if stake.Index == index {
			render.StagedDivision(em, adapter.Environment(), stake, token.FromNU(targetValue), extend)
			return nil
		}
	}
	return fmt.Errorf("staker %s has no stake with index %d", staker, index)
}
