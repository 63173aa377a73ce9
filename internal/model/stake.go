package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stakewatch/stakewatch/internal/token"
)

// NullAddress is the zero Ethereum address, used as the "not set"
// sentinel for worker addresses.
const NullAddress = "0x0000000000000000000000000000000000000000"

// Stake is a single locked-token position owned by a staker.
//
// Design decision: Period bounds and wall-clock timestamps are both
// carried even though they are derivable from each other, because the
// conversion needs the chain's seconds-per-period and views must be
// renderable without reaching back to chain parameters.
type Stake struct {
	// Index is the stake's slot in the staker's on-chain stake list.
	Index int

	// Value is the locked token amount.
	Value token.NU

	// Duration is the total number of periods the stake is locked for.
	Duration int

	// Remaining is the number of locked periods left, including the
	// current one. Zero or negative means the stake has expired.
	Remaining int

	// FirstLockedPeriod is the period in which the lock takes effect
	// (enactment).
	FirstLockedPeriod int

	// FinalLockedPeriod is the last period the stake remains locked
	// (termination).
	FinalLockedPeriod int

	// StartTime is the wall-clock start of the first locked period.
	StartTime time.Time

	// UnlockTime is the wall-clock instant the tokens unlock, i.e. the
	// end of the final locked period.
	UnlockTime time.Time

	// Active reports whether the stake is still locked in the current
	// period.
	Active bool

	// StakerAddress is the checksum address of the owning staker.
	StakerAddress string

	// WorkerAddress is the address delegated to confirm activity for
	// this stake. NullAddress when the staker has not set a worker.
	WorkerAddress string
}

// OrderingKey returns the stable key stakes are sorted by for display:
// the staker address followed by the zero-padded stake index. Sorting
// by this key groups stakes per staker and orders them by slot.
func (s Stake) OrderingKey() string {
	return fmt.Sprintf("%s|%08d", s.StakerAddress, s.Index)
}

// Describe returns the stake's table row: index, value, remaining
// duration, enactment period, and termination period.
func (s Stake) Describe() []string {
	return []string{
		strconv.Itoa(s.Index),
		s.Value.String(),
		strconv.Itoa(s.Remaining),
		strconv.Itoa(s.FirstLockedPeriod),
		strconv.Itoa(s.FinalLockedPeriod),
	}
}
