package render

import (
	"fmt"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/receipt"
)

// nextSteps is the static guidance printed after a successful stake
// initialization.
const nextSteps = `
View your stakes by running 'stakewatch list'
or inspect any staker with 'stakewatch stakers <address>'.`

// StakeConfirmation renders the post-submission confirmation for a new
// stake: a success banner, the receipt details, the staking contract
// address, and next-step guidance.
func StakeConfirmation(em emitter.Emitter, staking StakingAgent, r model.Receipt) {
	em.Echo("\nStake initialization transaction was successful.",
		emitter.WithColor(emitter.ColorGreen))
	em.Echo("\nTransaction details:")
	receipt.Summary(em, r, "deposit stake")
	em.Echo(fmt.Sprintf("\nStakingEscrow address: %s", staking.ContractAddress()),
		emitter.WithColor(emitter.ColorBlue))
	em.Echo(nextSteps, emitter.WithColor(emitter.ColorGreen))
}
