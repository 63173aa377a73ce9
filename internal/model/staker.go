package model

import (
	"math/big"

	"github.com/stakewatch/stakewatch/internal/token"
)

// NeverConfirmed is the missing-confirmation sentinel for a staker whose
// stake is new and has never been confirmed by a worker.
const NeverConfirmed = -1

// Staker is the per-staker view rendered by stake lists.
// All agent-derived values (confirmation counts, fees, rates) are
// precomputed by the caller; rendering performs no chain access.
type Staker struct {
	// ChecksumAddress is the staker's account address.
	ChecksumAddress string

	// WorkerAddress is the delegated worker address, or NullAddress
	// when no worker is set.
	WorkerAddress string

	// Stakes holds the staker's stake positions in on-chain order.
	// Renderers sort a copy by OrderingKey before display.
	Stakes []Stake

	// MissingConfirmations counts consecutive unconfirmed periods.
	// NeverConfirmed (-1) means the stake has never been confirmed.
	MissingConfirmations int

	// LastConfirmedPeriod is the most recent period the worker
	// confirmed activity for.
	LastConfirmedPeriod int

	// Restaking reports whether rewards are automatically restaked.
	Restaking bool

	// RestakingLocked reports whether the restaking setting is locked.
	RestakingLocked bool

	// WindingDown reports whether the stake duration decreases each
	// period instead of renewing.
	WindingDown bool

	// UnclaimedFees is the unclaimed policy fee amount in wei.
	UnclaimedFees *big.Int

	// MinRewardRate is the staker's minimum acceptable reward rate in
	// wei per period.
	MinRewardRate *big.Int

	// Network is the registry network label shown in the list header.
	// Empty when the registry has no named source.
	Network string
}

// Account is one wallet account row in the account summary table.
type Account struct {
	// Address is the account's checksum address.
	Address string

	// ETHBalance is the account's ether balance in wei.
	ETHBalance *big.Int

	// TokenBalance is the account's NU token balance.
	TokenBalance token.NU

	// Staking reports whether the account has any stakes.
	Staking bool
}
