package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/internal/config"
)

//go:embed templates/stakewatch.yaml templates/snapshot.yml
var initTemplates embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a stakewatch configuration file and example snapshot",
		Long: `Init creates a .stakewatch configuration file and an example snapshot
file in the current directory.

The generated snapshot documents the full schema with a worked example;
replace its records with your own exported chain state.

Examples:
  # Create .stakewatch and snapshot.yml in the current directory
  stakewatch init

  # Create the config file at a specific path
  stakewatch init -o myconfig.yaml

  # Force overwrite existing files
  stakewatch init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().String("snapshot-output", config.DefaultSnapshotFile,
		"Output file path for the example snapshot")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing files")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	snapshotPath, err := cmd.Flags().GetString("snapshot-output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeTemplate("templates/stakewatch.yaml", outputPath, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)

	if err := writeTemplate("templates/snapshot.yml", snapshotPath, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created example snapshot: %s\n", snapshotPath)

	fmt.Fprintln(cmd.OutOrStdout(), "\nReplace the snapshot's records with your exported chain state, then run:")
	fmt.Fprintln(cmd.OutOrStdout(), "  stakewatch list")

	return nil
}

// writeTemplate writes one embedded template to disk, refusing to
// overwrite unless force is set.
func writeTemplate(name, outputPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := initTemplates.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
