package snapshot

import "errors"

// Snapshot loading and validation errors.
//
// Design decision: We use package-level sentinel errors so callers can
// use errors.Is() for programmatic handling while still getting
// human-readable messages. Field-specific context is added with
// fmt.Errorf("%w") at the point of failure.
var (
	// ErrSnapshotNotFound is returned when the snapshot file does not
	// exist at the given path.
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrInvalidSecondsPerPeriod is returned when the snapshot declares
	// a negative period length. Zero is accepted and selects the one-day
	// default.
	ErrInvalidSecondsPerPeriod = errors.New("invalid seconds_per_period: must be non-negative (0 selects the one-day default)")

	// ErrMissingStakerAddress is returned when a staker record has no
	// address.
	ErrMissingStakerAddress = errors.New("staker record missing address")

	// ErrMissingAccountAddress is returned when an account record has
	// no address.
	ErrMissingAccountAddress = errors.New("account record missing address")

	// ErrInvalidAmount is returned when a token or wei amount is not a
	// base-10 integer string.
	ErrInvalidAmount = errors.New("invalid amount: must be a base-10 integer string")
)
