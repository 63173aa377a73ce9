package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "stakewatch"

	// DefaultSnapshotFile is the snapshot file name the init command
	// writes alongside the configuration template. Report commands never
	// guess a snapshot path; one must come from a flag or the config file.
	DefaultSnapshotFile = "snapshot.yml"
)

// Config holds all configuration options for stakewatch.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ReportConfig, FilterConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// SnapshotPath is the path to the YAML snapshot file that supplies
	// all staking state. Required for every report command.
	SnapshotPath string

	// IncludeInactive includes expired stakes in the stake list.
	// When false (default), only stakes locked in the current period
	// are shown.
	IncludeInactive bool

	// StakerAddress restricts the stake list to a single staker.
	// When empty, all stakers in the snapshot are shown.
	StakerAddress string

	// JSONReport enables JSON report output instead of the
	// human-readable terminal format. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport enables GitHub Flavored Markdown report output
	// instead of the human-readable terminal format. Mutually exclusive
	// with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for JSON or Markdown reports.
	// When empty, reports are written to stdout.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .stakewatch in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// Defaults holds the values loaded from the config file.
	// This is populated by LoadConfigFile and applied before flag
	// values take precedence.
	Defaults *File
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values so that future non-zero defaults have an obvious home and
// the defaults are documented in one place.
func NewConfig() *Config {
	return &Config{}
}

// ApplyFile fills unset options from the loaded config file.
// Flag values already present on the Config win over file values.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.Defaults = f
	if c.SnapshotPath == "" {
		c.SnapshotPath = f.Snapshot
	}
	if !c.IncludeInactive {
		c.IncludeInactive = f.IncludeInactive
	}
	if c.ReportFile == "" {
		c.ReportFile = f.Report.File
	}
	if !c.JSONReport && !c.MarkdownReport {
		switch f.Report.Format {
		case "json":
			c.JSONReport = true
		case "markdown":
			c.MarkdownReport = true
		}
	}
}

// XDGConfigDir returns the XDG config directory for stakewatch, which
// FindConfigFile searches after the current directory.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/stakewatch
// On macOS: ~/Library/Application Support/stakewatch
// On Windows: %APPDATA%\stakewatch
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any rendering begins.
// The first error found is returned because fixing one error often
// makes others irrelevant.
func (c *Config) Validate() error {
	if c.SnapshotPath == "" {
		return ErrNoSnapshot
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.StakerAddress != "" && !isHexAddress(c.StakerAddress) {
		return ErrInvalidStakerAddress
	}

	return nil
}

// isHexAddress reports whether s is a 0x-prefixed 40-digit hex address.
func isHexAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return false
	}
	for _, r := range s[2:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
