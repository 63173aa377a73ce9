package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoSnapshot is returned when no snapshot file is configured.
	// Every report command needs a snapshot: provide --snapshot or set
	// the snapshot path in the .stakewatch config file.
	ErrNoSnapshot = errors.New("no snapshot specified: provide --snapshot or set it in .stakewatch")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidStakerAddress is returned when the --staker filter is
	// not a 0x-prefixed 40-digit hex address.
	ErrInvalidStakerAddress = errors.New("invalid staker address: expected 0x followed by 40 hex digits")
)
