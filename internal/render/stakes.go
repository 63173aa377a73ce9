package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/token"
)

// timeFormat is the timestamp layout used in previews and staged-stake
// boxes. Timestamps are formatted in UTC so output is deterministic.
const timeFormat = "Jan 02 15:04 MST"

// lineWidth is the width of the network header rule in stake lists.
const lineWidth = 54

// stakeHeaders are the column headers of the per-staker stake table.
var stakeHeaders = []string{"Idx", "Value", "Remaining", "Enactment", "Termination"}

// titleCaser capitalizes network labels for the list header.
var titleCaser = cases.Title(language.English)

// StakeList renders each staker's status and stake table.
//
// Stakers with zero stakes are skipped entirely. When stakerAddress is
// non-empty only the matching staker is rendered. Inactive stakes are
// excluded unless includeInactive is set. Stakes are always displayed
// in ordering-key order regardless of input order.
//
// Two notices are deliberately independent: "No staking accounts
// found." fires when the input list is empty, and "No Stakes found"
// fires when no staker ended up rendered. A non-empty list whose
// stakers all have zero stakes triggers only the second.
func StakeList(em emitter.Emitter, stakers []model.Staker, includeInactive bool, stakerAddress string) {
	if len(stakers) == 0 {
		em.Echo("No staking accounts found.")
	}

	totalStakers := 0
	for _, staker := range stakers {
		if len(staker.Stakes) == 0 {
			// This staker has no stakes to show.
			continue
		}
		if stakerAddress != "" && staker.ChecksumAddress != stakerAddress {
			continue
		}

		stakes := make([]model.Stake, len(staker.Stakes))
		copy(stakes, staker.Stakes)
		sort.Slice(stakes, func(i, j int) bool {
			return stakes[i].OrderingKey() < stakes[j].OrderingKey()
		})

		if staker.Network != "" {
			snippet := fmt.Sprintf("\nNetwork %s ", titleCaser.String(staker.Network))
			pad := lineWidth - utf8.RuneCountInString(snippet) + 1
			if pad < 0 {
				pad = 0
			}
			em.Echo(snippet+strings.Repeat("═", pad), emitter.WithBold())
		}

		headerColor := emitter.ColorGreen
		if staker.MissingConfirmations != 0 {
			headerColor = emitter.ColorRed
		}
		em.Echo(fmt.Sprintf("Staker %s ════", staker.ChecksumAddress),
			emitter.WithBold(), emitter.WithColor(headerColor))
		em.Echo(fmt.Sprintf("Worker %s ════", staker.WorkerAddress))

		echoTable(em, nil, [][]string{
			{"Status", staker.ConfirmationLabel()},
			{"Restaking", restakingLabel(staker.Restaking, staker.RestakingLocked)},
			{"Winding Down", yesNo(staker.WindingDown)},
			{"Unclaimed Fees", token.PrettyWei(staker.UnclaimedFees)},
			{"Min reward rate", token.PrettyWei(staker.MinRewardRate)},
		})

		rows := make([][]string, 0, len(stakes))
		for _, stake := range stakes {
			if !stake.Active && !includeInactive {
				// This stake is inactive.
				continue
			}
			rows = append(rows, stake.Describe())
		}
		totalStakers++
		echoTable(em, stakeHeaders, rows)
	}

	if totalStakers == 0 {
		em.Echo("No Stakes found", emitter.WithColor(emitter.ColorRed))
	}
}

// FormatStakePreview renders one fixed-width pipe-delimited summary
// line for a stake. A negative index renders "-" in the index field.
// The function is pure: identical input yields an identical string.
func FormatStakePreview(stake model.Stake, index int) string {
	start := stake.StartTime.UTC().Format(timeFormat)
	end := stake.UnlockTime.UTC().Format(timeFormat)

	// The trailing dot pads two-digit durations so preview columns of
	// common lock lengths line up.
	dot := ""
	if len(strconv.Itoa(stake.Duration)) == 2 {
		dot = "."
	}
	prettyPeriods := fmt.Sprintf("%d periods %s", stake.Duration, dot)

	idx := "-"
	if index >= 0 {
		idx = strconv.Itoa(index)
	}

	return fmt.Sprintf("| %s | %s | %s | %d | %s | %s | %s - %s ",
		idx,
		shortAddress(stake.StakerAddress),
		shortAddress(stake.WorkerAddress),
		stake.Index,
		stake.Value,
		prettyPeriods,
		start,
		end)
}

// shortAddress truncates an address to its 0x prefix plus four hex
// characters for compact preview lines.
func shortAddress(address string) string {
	if len(address) <= 6 {
		return address
	}
	return address[:6]
}

// yesNo renders a boolean flag as Yes or No.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// restakingLabel renders the restaking flag with its lock state,
// e.g. "Yes (Locked)".
func restakingLabel(restaking, locked bool) string {
	state := "Unlocked"
	if locked {
		state = "Locked"
	}
	return fmt.Sprintf("%s (%s)", yesNo(restaking), state)
}
