package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the default configuration file name.
	DefaultConfigFile = ".stakewatch"

	// XDGConfigFile is the configuration file name inside the XDG config
	// directory. Unlike the dotfile used in the working and home
	// directories, the XDG directory is already app-scoped, so the file
	// carries a plain name.
	XDGConfigFile = "stakewatch.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File holds the options loadable from a .stakewatch YAML file.
// Every field is optional; CLI flags override file values.
type File struct {
	// Snapshot is the default snapshot file path.
	Snapshot string `yaml:"snapshot"`

	// IncludeInactive includes expired stakes in stake lists by default.
	IncludeInactive bool `yaml:"include_inactive"`

	// Report holds the default report output settings.
	Report ReportFile `yaml:"report"`
}

// ReportFile holds the report output defaults from the config file.
type ReportFile struct {
	// Format selects the default report format: "json" or "markdown".
	// Empty means the human-readable terminal format.
	Format string `yaml:"format"`

	// File is the default report output path. Empty means stdout.
	File string `yaml:"file"`
}

// LoadConfigFile loads defaults from a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .stakewatch in the current directory
// 3. Look for stakewatch.yaml in the XDG config directory
// 4. Look for .stakewatch in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check the XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
