package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	// Tests can modify specific fields to test validation rules.
	validConfig := func() *Config {
		return &Config{
			SnapshotPath: "snapshot.yml",
		}
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing snapshot returns ErrNoSnapshot", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.SnapshotPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("json and markdown together return ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("valid staker filter passes", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.StakerAddress = "0x1111111111111111111111111111111111111111"
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	testCases := []struct {
		name    string
		address string
	}{
		{name: "missing 0x prefix", address: "1111111111111111111111111111111111111111"},
		{name: "too short", address: "0x1111"},
		{name: "non-hex characters", address: "0xZZ11111111111111111111111111111111111111"},
	}
	for _, tc := range testCases {
		t.Run(tc.name+" returns ErrInvalidStakerAddress", func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			cfg.StakerAddress = tc.address
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidStakerAddress) {
				t.Errorf("expected ErrInvalidStakerAddress, got %v", err)
			}
		})
	}
}

// TestApplyFile verifies that config file values fill unset options
// without overriding values already set by flags.
func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("file values fill empty options", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(&File{
			Snapshot:        "exported.yml",
			IncludeInactive: true,
			Report:          ReportFile{Format: "markdown", File: "report.md"},
		})

		if cfg.SnapshotPath != "exported.yml" {
			t.Errorf("SnapshotPath = %q, want exported.yml", cfg.SnapshotPath)
		}
		if !cfg.IncludeInactive {
			t.Error("IncludeInactive = false, want true")
		}
		if !cfg.MarkdownReport {
			t.Error("MarkdownReport = false, want true")
		}
		if cfg.ReportFile != "report.md" {
			t.Errorf("ReportFile = %q, want report.md", cfg.ReportFile)
		}
	})

	t.Run("flag values win over file values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.SnapshotPath = "from-flag.yml"
		cfg.JSONReport = true
		cfg.ApplyFile(&File{
			Snapshot: "from-file.yml",
			Report:   ReportFile{Format: "markdown"},
		})

		if cfg.SnapshotPath != "from-flag.yml" {
			t.Errorf("SnapshotPath = %q, want from-flag.yml", cfg.SnapshotPath)
		}
		if cfg.MarkdownReport {
			t.Error("MarkdownReport = true, want false when --json was given")
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(nil)
		if cfg.SnapshotPath != "" {
			t.Errorf("SnapshotPath = %q, want empty", cfg.SnapshotPath)
		}
	})
}

// TestLoadConfigFile tests loading defaults from a YAML file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "snapshot: exported.yml\ninclude_inactive: true\nreport:\n  format: json\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if f.Snapshot != "exported.yml" {
			t.Errorf("Snapshot = %q, want exported.yml", f.Snapshot)
		}
		if !f.IncludeInactive {
			t.Error("IncludeInactive = false, want true")
		}
		if f.Report.Format != "json" {
			t.Errorf("Report.Format = %q, want json", f.Report.Format)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("snapshot: ["), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error, got nil")
		}
	})
}

// TestFindConfigFile tests the configuration file search order.
func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path is used when it exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("snapshot: a.yml\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})

	t.Run("falls back to the current directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("snapshot: a.yml\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Chdir(dir)
		if got := FindConfigFile(""); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("falls back to the XDG config directory", func(t *testing.T) {
		configHome := t.TempDir()
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", configHome)
		xdg.Reload()

		appDir := filepath.Join(configHome, AppName)
		if err := os.MkdirAll(appDir, 0o750); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(appDir, XDGConfigFile)
		if err := os.WriteFile(path, []byte("snapshot: a.yml\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		t.Chdir(t.TempDir()) // no .stakewatch in the working directory
		if got := FindConfigFile(""); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("current directory wins over the XDG config directory", func(t *testing.T) {
		configHome := t.TempDir()
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", configHome)
		xdg.Reload()

		appDir := filepath.Join(configHome, AppName)
		if err := os.MkdirAll(appDir, 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(appDir, XDGConfigFile), []byte("snapshot: xdg.yml\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		dir := t.TempDir()
		cwdConfig := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(cwdConfig, []byte("snapshot: cwd.yml\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Chdir(dir)
		if got := FindConfigFile(""); got != cwdConfig {
			t.Errorf("FindConfigFile() = %q, want %q", got, cwdConfig)
		}
	})
}

// TestXDGConfigDir verifies that the XDG helper appends the app name.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if got := XDGConfigDir(); filepath.Base(got) != AppName {
		t.Errorf("XDGConfigDir() = %q, want it to end with %q", got, AppName)
	}
}
