package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/config"
	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/log"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/render"
	"github.com/stakewatch/stakewatch/internal/report"
	"github.com/stakewatch/stakewatch/internal/snapshot"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Render the stake list for every staker in the snapshot",
		Long: `List renders per-staker stake tables from a snapshot file.

Each staker section shows the worker status, restaking and winding-down
flags, unclaimed fees, and one row per stake with its value, remaining
duration, and enactment/termination periods.

Examples:
  # List active stakes for all stakers
  stakewatch list --snapshot snapshot.yml

  # Include expired stakes
  stakewatch list --snapshot snapshot.yml --all

  # Only one staker
  stakewatch list --snapshot snapshot.yml --staker 0x1111111111111111111111111111111111111111

  # Machine-readable report written to a file
  stakewatch list --snapshot snapshot.yml --json --output report.json`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().BoolP("all", "a", false,
		"Include expired stakes (default shows only currently locked stakes)")
	cmd.Flags().String("staker", "",
		"Show only the given staker address")
	addSnapshotFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.IncludeInactive, err = cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	if !cfg.IncludeInactive && cfg.Defaults != nil {
		cfg.IncludeInactive = cfg.Defaults.IncludeInactive
	}
	cfg.StakerAddress, err = cmd.Flags().GetString("staker")
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
	stakers := adapter.Stakers()

	if cfg.JSONReport || cfg.MarkdownReport {
		return outputReport(cfg, model.NewStakeReport(stakers, cfg.IncludeInactive, adapter.CurrentPeriod()))
	}

	em := emitter.NewConsole(cmd.OutOrStdout())
	render.StakeList(em, stakers, cfg.IncludeInactive, cfg.StakerAddress)
	return nil
}

// addSnapshotFlags registers the snapshot and config-file flags shared
// by every report command.
func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("snapshot", "s", "",
		"Snapshot file path (default: snapshot path from .stakewatch)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .stakewatch in current or home directory)")
}

// addReportFlags registers the alternate report format flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the
// optional .stakewatch config file. Flag values win over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.SnapshotPath, err = cmd.Flags().GetString("snapshot")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("json"); f != nil {
		cfg.JSONReport, err = cmd.Flags().GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
		if err != nil {
			return nil, err
		}
		cfg.ReportFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue without file defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger installs the secure structured logger as the default.
func setupLogger(cmd *cobra.Command) {
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
}

// loadSnapshot loads and validates the configured snapshot file.
func loadSnapshot(cfg *config.Config) (*snapshot.Adapter, error) {
	snap, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	slog.Debug("snapshot loaded",
		"path", cfg.SnapshotPath,
		"stakers", len(snap.Stakers),
		"accounts", len(snap.Accounts),
		"period", snap.CurrentPeriod,
	)
	return snapshot.NewAdapter(snap), nil
}

// outputReport writes the stake report in the requested format.
func outputReport(cfg *config.Config, stakeReport *model.StakeReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports list staker addresses and balances, so restrict the
		// file to the owner.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	if cfg.JSONReport {
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	} else {
		writer = report.NewMarkdownWriter(output)
	}

	_, err := writer.Write(stakeReport)
	return err
}
