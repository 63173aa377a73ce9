package model

import (
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch/internal/token"
)

// ConfirmationLabel returns the display label for the staker's
// confirmation state:
//
//   - "Never Confirmed (New Stake)" when the stake was never confirmed
//   - "Confirmed #<lastPeriod>" when no confirmations are missing
//   - "Missing N confirmation(s)" otherwise, pluralized for N > 1
func (s Staker) ConfirmationLabel() string {
	switch {
	case s.MissingConfirmations == NeverConfirmed:
		return "Never Confirmed (New Stake)"
	case s.MissingConfirmations == 0:
		return fmt.Sprintf("Confirmed #%d", s.LastConfirmedPeriod)
	case s.MissingConfirmations == 1:
		return "Missing 1 confirmation"
	default:
		return fmt.Sprintf("Missing %d confirmations", s.MissingConfirmations)
	}
}

// StakeReport is the structured form of a stake list, used by the
// markdown and JSON report writers. It mirrors what the terminal
// renderer shows so the formats stay interchangeable.
type StakeReport struct {
	// GeneratedAt is the report creation timestamp.
	GeneratedAt time.Time `json:"generated_at"`

	// Network is the registry network label, if any.
	Network string `json:"network,omitempty"`

	// CurrentPeriod is the chain's current period at snapshot time.
	CurrentPeriod int `json:"current_period"`

	// Stakers holds one summary per staker with at least one rendered
	// stake, in input order.
	Stakers []StakerSummary `json:"stakers"`
}

// StakerSummary is the per-staker section of a StakeReport.
type StakerSummary struct {
	Address       string     `json:"address"`
	Worker        string     `json:"worker"`
	Status        string     `json:"status"`
	Restaking     string     `json:"restaking"`
	WindingDown   string     `json:"winding_down"`
	UnclaimedFees string     `json:"unclaimed_fees"`
	MinRewardRate string     `json:"min_reward_rate"`
	Stakes        []StakeRow `json:"stakes"`
}

// StakeRow is one stake entry in a StakerSummary.
type StakeRow struct {
	Index       int    `json:"index"`
	Value       string `json:"value"`
	Remaining   int    `json:"remaining"`
	Enactment   int    `json:"enactment"`
	Termination int    `json:"termination"`
	Active      bool   `json:"active"`
}

// NewStakeReport builds a StakeReport from staker views, applying the
// same skip and filter rules the terminal stake list uses: stakers with
// zero stakes are omitted, and inactive stakes are omitted unless
// includeInactive is set.
func NewStakeReport(stakers []Staker, includeInactive bool, currentPeriod int) *StakeReport {
	report := &StakeReport{
		GeneratedAt:   time.Now().UTC(),
		CurrentPeriod: currentPeriod,
	}

	for _, staker := range stakers {
		if len(staker.Stakes) == 0 {
			continue
		}
		if report.Network == "" {
			report.Network = staker.Network
		}

		summary := StakerSummary{
			Address:       staker.ChecksumAddress,
			Worker:        staker.WorkerAddress,
			Status:        staker.ConfirmationLabel(),
			Restaking:     yesNoLocked(staker.Restaking, staker.RestakingLocked),
			WindingDown:   yesNo(staker.WindingDown),
			UnclaimedFees: token.PrettyWei(staker.UnclaimedFees),
			MinRewardRate: token.PrettyWei(staker.MinRewardRate),
		}

		for _, stake := range staker.Stakes {
			if !stake.Active && !includeInactive {
				continue
			}
			summary.Stakes = append(summary.Stakes, StakeRow{
				Index:       stake.Index,
				Value:       stake.Value.String(),
				Remaining:   stake.Remaining,
				Enactment:   stake.FirstLockedPeriod,
				Termination: stake.FinalLockedPeriod,
				Active:      stake.Active,
			})
		}

		report.Stakers = append(report.Stakers, summary)
	}

	return report
}

// yesNo renders a boolean flag the way the terminal reports do.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// yesNoLocked renders the restaking flag with its lock state.
func yesNoLocked(restaking, locked bool) string {
	state := "Unlocked"
	if locked {
		state = "Locked"
	}
	return fmt.Sprintf("%s (%s)", yesNo(restaking), state)
}
