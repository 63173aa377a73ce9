package render

import (
	"fmt"
	"strings"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/period"
	"github.com/stakewatch/stakewatch/internal/token"
)

// StagedParams describes a stake that is staged but not yet submitted.
type StagedParams struct {
	// StakerAddress is the account that will own the stake.
	StakerAddress string

	// Value is the amount to lock.
	Value token.NU

	// LockPeriods is the lock duration in periods.
	LockPeriods int

	// StartPeriod is the period the lock takes effect.
	StartPeriod int

	// UnlockPeriod is the period the tokens unlock.
	UnlockPeriod int

	// DivisionMessage, when non-empty, is rendered in an ORIGINAL
	// STAKE section ahead of the staged stake. Set by StagedDivision.
	DivisionMessage string
}

// StagedStake renders a boxed preview of a staged stake: chain identity,
// value in both denominations, duration, and enactment/expiration
// timestamps resolved from the period bounds. No numeric validation is
// performed; the caller vets the parameters before staging.
func StagedStake(em emitter.Emitter, env Environment, p StagedParams) {
	start := period.TimeAt(p.StartPeriod, env.SecondsPerPeriod, true)
	unlock := period.TimeAt(p.UnlockPeriod, env.SecondsPerPeriod, true)

	if p.DivisionMessage != "" {
		em.Echo("\n"+strings.Repeat("═", 30)+" ORIGINAL STAKE "+strings.Repeat("═", 28),
			emitter.WithBold())
		em.Echo(p.DivisionMessage)
	}

	em.Echo("\n"+strings.Repeat("═", 30)+" STAGED STAKE "+strings.Repeat("═", 30),
		emitter.WithBold())

	em.Echo(fmt.Sprintf(`
Staking address: %s
~ Chain      -> ID # %d | %s
~ Value      -> %s (%s NuNits)
~ Duration   -> %d Days (%d Periods)
~ Enactment  -> %s (period #%d)
~ Expiration -> %s (period #%d)
`,
		p.StakerAddress,
		env.ChainID, env.ChainName,
		p.Value, p.Value.NuNits(),
		p.LockPeriods, p.LockPeriods,
		start.Format(timeFormat), p.StartPeriod,
		unlock.Format(timeFormat), p.UnlockPeriod))

	em.Echo(strings.Repeat("═", 73), emitter.WithBold())
}

// StagedDivision renders a preview of dividing an existing stake: the
// split-off target value keeps the original enactment period and runs
// extensionPeriods past the original termination. The derived bounds
// are:
//
//	newEndPeriod = original.FinalLockedPeriod + extensionPeriods
//	newDuration  = newEndPeriod - original.FirstLockedPeriod + 1
//	unlockPeriod = newEndPeriod + 1
func StagedDivision(em emitter.Emitter, env Environment, original model.Stake, targetValue token.NU, extensionPeriods int) {
	newEndPeriod := original.FinalLockedPeriod + extensionPeriods
	newDuration := newEndPeriod - original.FirstLockedPeriod + 1

	divisionMessage := fmt.Sprintf("\nStaking address: %s\n~ Original Stake: %s\n",
		original.StakerAddress, FormatStakePreview(original, -1))

	StagedStake(em, env, StagedParams{
		StakerAddress:   original.StakerAddress,
		Value:           targetValue,
		LockPeriods:     newDuration,
		StartPeriod:     original.FirstLockedPeriod,
		UnlockPeriod:    newEndPeriod + 1,
		DivisionMessage: divisionMessage,
	})
}
