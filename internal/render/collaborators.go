package render

import (
	"math/big"

	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/token"
)

// StakingAgent supplies per-staker state from the staking escrow
// contract. Implementations answer from already-fetched data; renderers
// call these methods synchronously and expect them not to fail.
type StakingAgent interface {
	// CurrentPeriod returns the chain's current period.
	CurrentPeriod() int

	// LastActivePeriod returns the most recent period the staker's
	// worker confirmed activity for. May exceed the current period by
	// one when the next period is already confirmed.
	LastActivePeriod(staker string) int

	// OwnedTokens returns the staker's total token holdings.
	OwnedTokens(staker string) token.NU

	// LockedTokens returns the staker's currently locked tokens.
	LockedTokens(staker string) token.NU

	// Worker returns the staker's delegated worker address, or
	// model.NullAddress when no worker is set.
	Worker(staker string) string

	// IsRestaking reports whether rewards are automatically restaked.
	IsRestaking(staker string) bool

	// IsRestakingLocked reports whether the restaking flag is locked.
	IsRestakingLocked(staker string) bool

	// RestakeUnlockPeriod returns the period the restaking lock ends.
	RestakeUnlockPeriod(staker string) int

	// IsWindingDown reports whether the staker is winding down.
	IsWindingDown(staker string) bool

	// ContractAddress returns the staking escrow contract address.
	ContractAddress() string
}

// PolicyAgent supplies per-staker policy reward state.
type PolicyAgent interface {
	// RewardAmount returns the staker's unclaimed policy fees in wei.
	RewardAmount(staker string) *big.Int

	// MinRewardRate returns the staker's minimum reward rate in wei.
	MinRewardRate(staker string) *big.Int
}

// Wallet enumerates accounts and answers balance queries.
type Wallet interface {
	// Accounts returns the wallet's account addresses in wallet order.
	Accounts() []string

	// ETHBalance returns the account's ether balance in wei.
	ETHBalance(account string) *big.Int

	// TokenBalance returns the account's NU balance. The registry
	// locates the token contract for the wallet's network.
	TokenBalance(account string, registry Registry) token.NU
}

// Registry identifies the contract registry and its network.
type Registry interface {
	// Network returns the registry's network label, or the empty
	// string when the registry source is unnamed.
	Network() string

	// ChainID returns the chain's numeric identifier.
	ChainID() int

	// ChainName returns the chain's display name.
	ChainName() string
}

// StakeProvider enumerates stake positions per account.
type StakeProvider interface {
	// Stakes returns the account's stake list, refreshed to the
	// snapshot's current period. Empty when the account never staked.
	Stakes(account string) []model.Stake
}

// Environment carries the chain parameters staged-stake previews need.
type Environment struct {
	// ChainID is the numeric chain identifier.
	ChainID int

	// ChainName is the chain's display name.
	ChainName string

	// SecondsPerPeriod is the length of one staking period.
	SecondsPerPeriod int
}
