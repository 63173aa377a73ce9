package render

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
	"github.com/stakewatch/stakewatch/internal/token"
)

// TestAccountTable tests the wallet account summary table.
func TestAccountTable(t *testing.T) {
	t.Parallel()

	staker := "0x1111111111111111111111111111111111111111"
	idle := "0x2222222222222222222222222222222222222222"

	wallet := &fakeWallet{
		accounts: []string{staker, idle},
		eth: map[string]*big.Int{
			staker: big.NewInt(2000000000000000000),
			idle:   big.NewInt(500000000000000000),
		},
		nu: map[string]token.NU{
			staker: token.FromNU(45000),
			idle:   token.FromNU(0),
		},
	}
	registry := &fakeRegistry{network: "mainnet", chainID: 1, chainName: "Ethereum"}
	provider := &fakeStakeProvider{
		stakes: map[string][]model.Stake{
			staker: {testStake(0, 15000, 90, 110, true)},
		},
	}

	rec := emitter.NewRecorder()
	AccountTable(rec, wallet, registry, provider)

	t.Run("both accounts listed", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains(staker) || !rec.Contains(idle) {
			t.Errorf("missing account rows in:\n%s", rec.Output())
		}
	})

	t.Run("balances formatted", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains("2 ETH") {
			t.Errorf("missing ETH balance in:\n%s", rec.Output())
		}
		if !rec.Contains("0.5 ETH") {
			t.Errorf("missing fractional ETH balance in:\n%s", rec.Output())
		}
		if !rec.Contains("45,000.00 NU") {
			t.Errorf("missing NU balance in:\n%s", rec.Output())
		}
	})

	t.Run("staking flag from stake collection", func(t *testing.T) {
		t.Parallel()
		out := rec.Output()
		if !containsRow(out, staker, "Yes") {
			t.Errorf("expected staking account marked Yes in:\n%s", out)
		}
		if !containsRow(out, idle, "No") {
			t.Errorf("expected idle account marked No in:\n%s", out)
		}
	})

	t.Run("headers present", func(t *testing.T) {
		t.Parallel()
		for _, header := range []string{"Staking", "Account", "ETH", "NU"} {
			if !rec.Contains(header) {
				t.Errorf("missing header %q", header)
			}
		}
	})
}

// TestAccountTableEmptyWallet tests rendering an empty wallet.
func TestAccountTableEmptyWallet(t *testing.T) {
	t.Parallel()

	wallet := &fakeWallet{}
	registry := &fakeRegistry{}
	provider := &fakeStakeProvider{}

	rec := emitter.NewRecorder()
	AccountTable(rec, wallet, registry, provider)

	if len(rec.Calls) != 1 {
		t.Fatalf("expected a single table block, got %d calls", len(rec.Calls))
	}
}

// containsRow reports whether the line containing the address also
// contains the marker.
func containsRow(out, address, marker string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, address) {
			return strings.Contains(line, marker)
		}
	}
	return false
}
