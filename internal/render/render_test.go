package render

import (
	"math/big"
	"time"

	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/period"
	"github.com/stakewatch/stakewatch/internal/token"
)

// testEnv is the chain environment shared by renderer tests.
var testEnv = Environment{
	ChainID:          5,
	ChainName:        "Goerli",
	SecondsPerPeriod: period.DefaultSecondsPerPeriod,
}

// testStake builds a stake fixture with period bounds and matching
// timestamps.
func testStake(index int, tokens int64, first, final int, active bool) model.Stake {
	return model.Stake{
		Index:             index,
		Value:             token.FromNU(tokens),
		Duration:          final - first + 1,
		Remaining:         final - 100 + 1,
		FirstLockedPeriod: first,
		FinalLockedPeriod: final,
		StartTime:         period.TimeAt(first, period.DefaultSecondsPerPeriod, true),
		UnlockTime:        period.TimeAt(final, period.DefaultSecondsPerPeriod, false),
		Active:            active,
		StakerAddress:     "0x1111111111111111111111111111111111111111",
		WorkerAddress:     "0x2222222222222222222222222222222222222222",
	}
}

// testStaker builds a staker fixture around the given stakes.
func testStaker(stakes ...model.Stake) model.Staker {
	return model.Staker{
		ChecksumAddress:      "0x1111111111111111111111111111111111111111",
		WorkerAddress:        "0x2222222222222222222222222222222222222222",
		Stakes:               stakes,
		MissingConfirmations: 0,
		LastConfirmedPeriod:  100,
		Restaking:            true,
		RestakingLocked:      false,
		WindingDown:          false,
		UnclaimedFees:        big.NewInt(2000000000000000000),
		MinRewardRate:        big.NewInt(50000000000),
		Network:              "mainnet",
	}
}

// fakeStakingAgent is an in-memory StakingAgent for renderer tests.
type fakeStakingAgent struct {
	currentPeriod   int
	lastActive      map[string]int
	owned           map[string]token.NU
	locked          map[string]token.NU
	workers         map[string]string
	restaking       map[string]bool
	restakingLocked map[string]bool
	restakeUnlock   map[string]int
	windingDown     map[string]bool
	contractAddress string
}

func (f *fakeStakingAgent) CurrentPeriod() int                  { return f.currentPeriod }
func (f *fakeStakingAgent) LastActivePeriod(s string) int       { return f.lastActive[s] }
func (f *fakeStakingAgent) OwnedTokens(s string) token.NU       { return f.owned[s] }
func (f *fakeStakingAgent) LockedTokens(s string) token.NU      { return f.locked[s] }
func (f *fakeStakingAgent) Worker(s string) string              { return f.workers[s] }
func (f *fakeStakingAgent) IsRestaking(s string) bool           { return f.restaking[s] }
func (f *fakeStakingAgent) IsRestakingLocked(s string) bool     { return f.restakingLocked[s] }
func (f *fakeStakingAgent) RestakeUnlockPeriod(s string) int    { return f.restakeUnlock[s] }
func (f *fakeStakingAgent) IsWindingDown(s string) bool         { return f.windingDown[s] }
func (f *fakeStakingAgent) ContractAddress() string             { return f.contractAddress }

// fakePolicyAgent is an in-memory PolicyAgent for renderer tests.
type fakePolicyAgent struct {
	rewards  map[string]*big.Int
	minRates map[string]*big.Int
}

func (f *fakePolicyAgent) RewardAmount(s string) *big.Int  { return f.rewards[s] }
func (f *fakePolicyAgent) MinRewardRate(s string) *big.Int { return f.minRates[s] }

// fakeWallet is an in-memory Wallet for renderer tests.
type fakeWallet struct {
	accounts []string
	eth      map[string]*big.Int
	nu       map[string]token.NU
}

func (f *fakeWallet) Accounts() []string                 { return f.accounts }
func (f *fakeWallet) ETHBalance(a string) *big.Int       { return f.eth[a] }
func (f *fakeWallet) TokenBalance(a string, _ Registry) token.NU { return f.nu[a] }

// fakeRegistry is an in-memory Registry for renderer tests.
type fakeRegistry struct {
	network   string
	chainID   int
	chainName string
}

func (f *fakeRegistry) Network() string   { return f.network }
func (f *fakeRegistry) ChainID() int      { return f.chainID }
func (f *fakeRegistry) ChainName() string { return f.chainName }

// fakeStakeProvider is an in-memory StakeProvider for renderer tests.
type fakeStakeProvider struct {
	stakes map[string][]model.Stake
}

func (f *fakeStakeProvider) Stakes(a string) []model.Stake { return f.stakes[a] }

// mustTime panics on invalid fixture timestamps; test-only helper.
func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
