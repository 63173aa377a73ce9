package snapshot

import (
	"math/big"

	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/period"
	"github.com/stakewatch/stakewatch/internal/render"
	"github.com/stakewatch/stakewatch/internal/token"
)

// Adapter answers the renderers' collaborator queries from a loaded
// snapshot. One adapter serves as staking agent, policy agent, wallet,
// registry, and stake provider at once; every method is a lookup into
// the snapshot's records.
type Adapter struct {
	snap    *Snapshot
	stakers map[string]*StakerRecord
}

// Interface checks.
var (
	_ render.StakingAgent  = (*Adapter)(nil)
	_ render.PolicyAgent   = (*Adapter)(nil)
	_ render.Wallet        = (*Adapter)(nil)
	_ render.Registry      = (*Adapter)(nil)
	_ render.StakeProvider = (*Adapter)(nil)
)

// NewAdapter wraps a validated snapshot.
func NewAdapter(snap *Snapshot) *Adapter {
	stakers := make(map[string]*StakerRecord, len(snap.Stakers))
	for i := range snap.Stakers {
		stakers[snap.Stakers[i].Address] = &snap.Stakers[i]
	}
	return &Adapter{snap: snap, stakers: stakers}
}

// CurrentPeriod returns the snapshot's current period.
func (a *Adapter) CurrentPeriod() int { return a.snap.CurrentPeriod }

// LastActivePeriod returns the staker's most recent confirmed period,
// or zero for unknown stakers.
func (a *Adapter) LastActivePeriod(staker string) int {
	if rec, ok := a.stakers[staker]; ok {
		return rec.LastActivePeriod
	}
	return 0
}

// OwnedTokens returns the staker's total token holdings.
func (a *Adapter) OwnedTokens(staker string) token.NU {
	if rec, ok := a.stakers[staker]; ok {
		return token.FromNuNits(parseWei(rec.OwnedNuNits))
	}
	return token.NU{}
}

// LockedTokens returns the sum of the staker's active stake values.
func (a *Adapter) LockedTokens(staker string) token.NU {
	rec, ok := a.stakers[staker]
	if !ok {
		return token.NU{}
	}
	total := new(big.Int)
	for _, stake := range rec.Stakes {
		if stake.FinalPeriod >= a.snap.CurrentPeriod {
			total.Add(total, parseWei(stake.ValueNuNits))
		}
	}
	return token.FromNuNits(total)
}

// Worker returns the staker's worker address, or model.NullAddress when
// unset.
func (a *Adapter) Worker(staker string) string {
	if rec, ok := a.stakers[staker]; ok && rec.Worker != "" {
		return rec.Worker
	}
	return model.NullAddress
}

// IsRestaking reports whether rewards are automatically restaked.
func (a *Adapter) IsRestaking(staker string) bool {
	if rec, ok := a.stakers[staker]; ok {
		return rec.Restaking
	}
	return false
}

// IsRestakingLocked reports whether the restaking flag is locked.
func (a *Adapter) IsRestakingLocked(staker string) bool {
	if rec, ok := a.stakers[staker]; ok {
		return rec.RestakingLocked
	}
	return false
}

// RestakeUnlockPeriod returns the period the restaking lock ends.
func (a *Adapter) RestakeUnlockPeriod(staker string) int {
	if rec, ok := a.stakers[staker]; ok {
		return rec.RestakeUnlockPeriod
	}
	return 0
}

// IsWindingDown reports whether the staker is winding down.
func (a *Adapter) IsWindingDown(staker string) bool {
	if rec, ok := a.stakers[staker]; ok {
		return rec.WindingDown
	}
	return false
}

// ContractAddress returns the staking escrow contract address.
func (a *Adapter) ContractAddress() string { return a.snap.StakingContract }

// RewardAmount returns the staker's unclaimed policy fees in wei.
func (a *Adapter) RewardAmount(staker string) *big.Int {
	if rec, ok := a.stakers[staker]; ok {
		return parseWei(rec.UnclaimedFeesWei)
	}
	return new(big.Int)
}

// MinRewardRate returns the staker's minimum reward rate in wei.
func (a *Adapter) MinRewardRate(staker string) *big.Int {
	if rec, ok := a.stakers[staker]; ok {
		return parseWei(rec.MinRewardRateWei)
	}
	return new(big.Int)
}

// Accounts returns the wallet account addresses in snapshot order.
func (a *Adapter) Accounts() []string {
	accounts := make([]string, 0, len(a.snap.Accounts))
	for _, account := range a.snap.Accounts {
		accounts = append(accounts, account.Address)
	}
	return accounts
}

// ETHBalance returns the account's ether balance in wei.
func (a *Adapter) ETHBalance(account string) *big.Int {
	for _, rec := range a.snap.Accounts {
		if rec.Address == account {
			return parseWei(rec.ETHBalanceWei)
		}
	}
	return new(big.Int)
}

// TokenBalance returns the account's NU balance. The registry argument
// is unused because the snapshot already resolved the token contract.
func (a *Adapter) TokenBalance(account string, _ render.Registry) token.NU {
	for _, rec := range a.snap.Accounts {
		if rec.Address == account {
			return token.FromNuNits(parseWei(rec.TokenNuNits))
		}
	}
	return token.NU{}
}

// Network returns the registry network label.
func (a *Adapter) Network() string { return a.snap.Network }

// ChainID returns the chain's numeric identifier.
func (a *Adapter) ChainID() int { return a.snap.ChainID }

// ChainName returns the chain's display name.
func (a *Adapter) ChainName() string { return a.snap.ChainName }

// Stakes returns the account's stake list refreshed to the snapshot's
// current period, or nil when the account never staked.
func (a *Adapter) Stakes(account string) []model.Stake {
	rec, ok := a.stakers[account]
	if !ok {
		return nil
	}
	stakes := make([]model.Stake, 0, len(rec.Stakes))
	for _, sr := range rec.Stakes {
		stakes = append(stakes, a.buildStake(rec, sr))
	}
	return stakes
}

// buildStake derives the display fields a raw stake record omits.
func (a *Adapter) buildStake(rec *StakerRecord, sr StakeRecord) model.Stake {
	spp := a.snap.secondsPerPeriod()
	worker := rec.Worker
	if worker == "" {
		worker = model.NullAddress
	}
	return model.Stake{
		Index:             sr.Index,
		Value:             token.FromNuNits(parseWei(sr.ValueNuNits)),
		Duration:          sr.FinalPeriod - sr.FirstPeriod + 1,
		Remaining:         sr.FinalPeriod - a.snap.CurrentPeriod + 1,
		FirstLockedPeriod: sr.FirstPeriod,
		FinalLockedPeriod: sr.FinalPeriod,
		StartTime:         period.TimeAt(sr.FirstPeriod, spp, true),
		UnlockTime:        period.TimeAt(sr.FinalPeriod, spp, false),
		Active:            sr.FinalPeriod >= a.snap.CurrentPeriod,
		StakerAddress:     rec.Address,
		WorkerAddress:     worker,
	}
}

// Stakers builds the staker views the list renderer consumes, in
// snapshot order.
func (a *Adapter) Stakers() []model.Staker {
	stakers := make([]model.Staker, 0, len(a.snap.Stakers))
	for i := range a.snap.Stakers {
		rec := &a.snap.Stakers[i]
		worker := rec.Worker
		if worker == "" {
			worker = model.NullAddress
		}
		stakers = append(stakers, model.Staker{
			ChecksumAddress:      rec.Address,
			WorkerAddress:        worker,
			Stakes:               a.Stakes(rec.Address),
			MissingConfirmations: rec.MissingConfirmations,
			LastConfirmedPeriod:  rec.LastActivePeriod,
			Restaking:            rec.Restaking,
			RestakingLocked:      rec.RestakingLocked,
			WindingDown:          rec.WindingDown,
			UnclaimedFees:        parseWei(rec.UnclaimedFeesWei),
			MinRewardRate:        parseWei(rec.MinRewardRateWei),
			Network:              a.snap.Network,
		})
	}
	return stakers
}

// Addresses returns the staker addresses in snapshot order.
func (a *Adapter) Addresses() []string {
	addresses := make([]string, 0, len(a.snap.Stakers))
	for _, rec := range a.snap.Stakers {
		addresses = append(addresses, rec.Address)
	}
	return addresses
}

// Environment returns the chain parameters for staged-stake previews.
func (a *Adapter) Environment() render.Environment {
	return render.Environment{
		ChainID:          a.snap.ChainID,
		ChainName:        a.snap.ChainName,
		SecondsPerPeriod: a.snap.secondsPerPeriod(),
	}
}
