package render

import (
	"fmt"
	"strings"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/nickname"
	"github.com/stakewatch/stakewatch/internal/token"
)

// StakerDirectory renders one entry per address: nickname with colored
// symbols, owned/locked tokens, restaking and winding-down state, an
// activity-status line, the worker address, and policy reward figures.
//
// The activity line has exactly four mutually exclusive cases, checked
// in order against missing = currentPeriod - lastActivePeriod:
//
//	missing == -1            -> next period already confirmed (green)
//	missing == 0             -> current confirmed, next pending (yellow)
//	missing == currentPeriod -> never confirmed at all (red)
//	otherwise                -> missing N confirmations (red)
//
// The never-confirmed check must run before the generic missing-N case:
// a staker that never confirmed has lastActivePeriod 0, so N equals the
// current period and would otherwise render as an ordinary gap.
func StakerDirectory(em emitter.Emitter, addresses []string, staking StakingAgent, policy PolicyAgent) {
	currentPeriod := staking.CurrentPeriod()
	em.Echo(fmt.Sprintf("\nCurrent period: %d", currentPeriod))
	em.Echo("\n| Stakers |\n")
	em.Echo(fmt.Sprintf("%-42s  Staker information", "Checksum address"))
	em.Echo(strings.Repeat("=", 42+2+53))

	for _, address := range addresses {
		name, pairs := nickname.FromAddress(address)
		em.Echo(fmt.Sprintf("%s  %-10s %s ", address, "Nickname:", name), emitter.WithNoNewline())
		em.Echo(pairs[0].Symbol, emitter.WithColor(pairs[0].Color), emitter.WithNoNewline())
		em.Echo("  ", emitter.WithNoNewline())
		em.Echo(pairs[1].Symbol, emitter.WithColor(pairs[1].Color))

		// Indent detail lines under the address column.
		tab := strings.Repeat(" ", len(address))

		lastActive := staking.LastActivePeriod(address)
		missing := currentPeriod - lastActive

		em.Echo(fmt.Sprintf("%s  %-10s %s  (Staked: %s)",
			tab, "Owned:", staking.OwnedTokens(address), staking.LockedTokens(address)))

		if staking.IsRestaking(address) {
			if staking.IsRestakingLocked(address) {
				em.Echo(fmt.Sprintf("%s  %-10s Yes  (Locked until period: %d)",
					tab, "Re-staking:", staking.RestakeUnlockPeriod(address)))
			} else {
				em.Echo(fmt.Sprintf("%s  %-10s Yes  (Unlocked)", tab, "Re-staking:"))
			}
		} else {
			em.Echo(fmt.Sprintf("%s  %-10s No", tab, "Re-staking:"))
		}

		em.Echo(fmt.Sprintf("%s  %-10s %s", tab, "Winding down:", yesNo(staking.IsWindingDown(address))))

		em.Echo(fmt.Sprintf("%s  %-10s ", tab, "Activity:"), emitter.WithNoNewline())
		switch {
		case missing == -1:
			em.Echo(fmt.Sprintf("Next period confirmed (#%d)", lastActive),
				emitter.WithColor(emitter.ColorGreen))
		case missing == 0:
			em.Echo(fmt.Sprintf("Current period confirmed (#%d). Pending confirmation of next period.", lastActive),
				emitter.WithColor(emitter.ColorYellow))
		case missing == currentPeriod:
			em.Echo("Never confirmed activity", emitter.WithColor(emitter.ColorRed))
		default:
			em.Echo(fmt.Sprintf("Missing %d confirmations (last time for period #%d)", missing, lastActive),
				emitter.WithColor(emitter.ColorRed))
		}

		em.Echo(fmt.Sprintf("%s  %-10s ", tab, "Worker:"), emitter.WithNoNewline())
		if worker := staking.Worker(address); worker == model.NullAddress || worker == "" {
			em.Echo("Worker not set", emitter.WithColor(emitter.ColorRed))
		} else {
			em.Echo(worker)
		}

		em.Echo(fmt.Sprintf("%s  Unclaimed fees: %s", tab, token.PrettyWei(policy.RewardAmount(address))))
		em.Echo(fmt.Sprintf("%s  Min reward rate: %s", tab, token.PrettyWei(policy.MinRewardRate(address))))
	}
}
