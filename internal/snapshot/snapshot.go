package snapshot

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/period"
)

// Snapshot is one chain-state export. All token and wei amounts are
// base-10 integer strings because YAML integers overflow at 2^63 and
// one NU is already 10^18 NuNits.
type Snapshot struct {
	// ChainID is the numeric chain identifier.
	ChainID int `yaml:"chain_id"`

	// ChainName is the chain's display name, e.g. "Mainnet".
	ChainName string `yaml:"chain_name"`

	// Network is the registry network label. May be empty for local
	// registries without a named source.
	Network string `yaml:"network"`

	// CurrentPeriod is the chain's current period at export time.
	CurrentPeriod int `yaml:"current_period"`

	// SecondsPerPeriod is the period length. Zero means the canonical
	// one-day period.
	SecondsPerPeriod int `yaml:"seconds_per_period"`

	// StakingContract is the staking escrow contract address.
	StakingContract string `yaml:"staking_contract"`

	// Stakers holds the exported staker records in chain order.
	Stakers []StakerRecord `yaml:"stakers"`

	// Accounts holds the wallet accounts in wallet order.
	Accounts []AccountRecord `yaml:"accounts"`

	// LastTransaction optionally carries the receipt of the most
	// recent staking transaction, for confirmation rendering.
	LastTransaction *model.Receipt `yaml:"last_transaction,omitempty"`
}

// StakerRecord is one staker's exported state.
//
// LastActivePeriod and MissingConfirmations are both carried even
// though they are related: the first answers the staking agent's
// last-active query (and may exceed the current period by one), the
// second is the list renderer's precomputed count with its -1
// never-confirmed sentinel.
type StakerRecord struct {
	Address              string        `yaml:"address"`
	Worker               string        `yaml:"worker"`
	LastActivePeriod     int           `yaml:"last_active_period"`
	MissingConfirmations int           `yaml:"missing_confirmations"`
	OwnedNuNits          string        `yaml:"owned_nunits"`
	Restaking            bool          `yaml:"restaking"`
	RestakingLocked      bool          `yaml:"restaking_locked"`
	RestakeUnlockPeriod  int           `yaml:"restake_unlock_period"`
	WindingDown          bool          `yaml:"winding_down"`
	UnclaimedFeesWei     string        `yaml:"unclaimed_fees_wei"`
	MinRewardRateWei     string        `yaml:"min_reward_rate_wei"`
	Stakes               []StakeRecord `yaml:"stakes"`
}

// StakeRecord is one stake position. The active flag and timestamps
// are derived from the period bounds at load time.
type StakeRecord struct {
	Index       int    `yaml:"index"`
	ValueNuNits string `yaml:"value_nunits"`
	FirstPeriod int    `yaml:"first_period"`
	FinalPeriod int    `yaml:"final_period"`
}

// AccountRecord is one wallet account's balances.
type AccountRecord struct {
	Address       string `yaml:"address"`
	ETHBalanceWei string `yaml:"eth_balance_wei"`
	TokenNuNits   string `yaml:"token_nunits"`
}

// Load reads and validates a snapshot file.
// It returns ErrSnapshotNotFound when the file does not exist.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided snapshot path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, err
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Validate checks the snapshot for structural problems.
// Amount strings are parsed here so later accessors cannot fail; the
// first error found is returned with the offending record named.
func (s *Snapshot) Validate() error {
	if s.SecondsPerPeriod < 0 {
		return ErrInvalidSecondsPerPeriod
	}

	for i, staker := range s.Stakers {
		if staker.Address == "" {
			return fmt.Errorf("%w: staker %d", ErrMissingStakerAddress, i)
		}
		for _, field := range []string{staker.OwnedNuNits, staker.UnclaimedFeesWei, staker.MinRewardRateWei} {
			if err := checkAmount(field); err != nil {
				return fmt.Errorf("staker %s: %w", staker.Address, err)
			}
		}
		for _, stake := range staker.Stakes {
			if err := checkAmount(stake.ValueNuNits); err != nil {
				return fmt.Errorf("staker %s stake %d: %w", staker.Address, stake.Index, err)
			}
		}
	}

	for i, account := range s.Accounts {
		if account.Address == "" {
			return fmt.Errorf("%w: account %d", ErrMissingAccountAddress, i)
		}
		for _, field := range []string{account.ETHBalanceWei, account.TokenNuNits} {
			if err := checkAmount(field); err != nil {
				return fmt.Errorf("account %s: %w", account.Address, err)
			}
		}
	}

	return nil
}

// secondsPerPeriod returns the effective period length.
func (s *Snapshot) secondsPerPeriod() int {
	if s.SecondsPerPeriod == 0 {
		return period.DefaultSecondsPerPeriod
	}
	return s.SecondsPerPeriod
}

// checkAmount validates an optional base-10 amount string.
func checkAmount(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := new(big.Int).SetString(s, 10); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return nil
}

// parseWei parses a validated amount string; empty means zero.
// Call only after Validate has accepted the snapshot.
func parseWei(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}
