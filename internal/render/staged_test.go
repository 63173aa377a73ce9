package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/token"
)

// TestStagedStake tests the staged-stake preview box.
func TestStagedStake(t *testing.T) {
	t.Parallel()

	params := StagedParams{
		StakerAddress: "0x1111111111111111111111111111111111111111",
		Value:         token.FromNU(30000),
		LockPeriods:   30,
		StartPeriod:   18250,
		UnlockPeriod:  18280,
	}

	rec := emitter.NewRecorder()
	StagedStake(rec, testEnv, params)

	t.Run("banner present and bold", func(t *testing.T) {
		t.Parallel()
		call := rec.Find("STAGED STAKE")
		if call == nil {
			t.Fatal("missing staged stake banner")
		}
		if !call.Bold {
			t.Error("expected bold banner")
		}
	})

	t.Run("no original stake section without division", func(t *testing.T) {
		t.Parallel()
		if rec.Contains("ORIGINAL STAKE") {
			t.Error("unexpected original stake section")
		}
	})

	t.Run("chain identity", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains("~ Chain      -> ID # 5 | Goerli") {
			t.Errorf("missing chain line in:\n%s", rec.Output())
		}
	})

	t.Run("value in both denominations", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains("~ Value      -> 30,000.00 NU (30000000000000000000000 NuNits)") {
			t.Errorf("missing value line in:\n%s", rec.Output())
		}
	})

	t.Run("duration in periods", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains("~ Duration   -> 30 Days (30 Periods)") {
			t.Errorf("missing duration line in:\n%s", rec.Output())
		}
	})

	t.Run("period numbers on enactment and expiration", func(t *testing.T) {
		t.Parallel()
		if !rec.Contains("(period #18250)") || !rec.Contains("(period #18280)") {
			t.Errorf("missing period anchors in:\n%s", rec.Output())
		}
	})

	t.Run("closing rule", func(t *testing.T) {
		t.Parallel()
		call := rec.Find(strings.Repeat("═", 73))
		if call == nil || !call.Bold {
			t.Error("missing bold closing rule")
		}
	})
}

// TestStagedStakeWithDivisionMessage tests the ORIGINAL STAKE section.
func TestStagedStakeWithDivisionMessage(t *testing.T) {
	t.Parallel()

	params := StagedParams{
		StakerAddress:   "0x1111111111111111111111111111111111111111",
		Value:           token.FromNU(10000),
		LockPeriods:     10,
		StartPeriod:     100,
		UnlockPeriod:    110,
		DivisionMessage: "original stake summary",
	}

	rec := emitter.NewRecorder()
	StagedStake(rec, testEnv, params)

	banner := rec.Find("ORIGINAL STAKE")
	if banner == nil {
		t.Fatal("missing original stake banner")
	}
	if !banner.Bold {
		t.Error("expected bold banner")
	}
	if !rec.Contains("original stake summary") {
		t.Error("missing division message body")
	}

	out := rec.Output()
	if strings.Index(out, "ORIGINAL STAKE") > strings.Index(out, "STAGED STAKE") {
		t.Error("original stake section must precede the staged stake section")
	}
}

// TestStagedDivision tests the derived division bounds:
// newEndPeriod = end + extension, newDuration = newEnd - start + 1,
// unlockPeriod = newEnd + 1.
func TestStagedDivision(t *testing.T) {
	t.Parallel()

	original := testStake(0, 50000, 18250, 18279, true)

	testCases := []struct {
		name        string
		extension   int
		newDuration int
		unlock      int
	}{
		{"no extension", 0, 30, 18280},
		{"short extension", 5, 35, 18285},
		{"long extension", 335, 365, 18615},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := emitter.NewRecorder()
			StagedDivision(rec, testEnv, original, token.FromNU(20000), tc.extension)

			if !rec.Contains(fmt.Sprintf("~ Duration   -> %d Days (%d Periods)", tc.newDuration, tc.newDuration)) {
				t.Errorf("wrong duration in:\n%s", rec.Output())
			}
			if !rec.Contains(fmt.Sprintf("(period #%d)", tc.unlock)) {
				t.Errorf("wrong unlock period in:\n%s", rec.Output())
			}
			if !rec.Contains("(period #18250)") {
				t.Errorf("start period changed in:\n%s", rec.Output())
			}
		})
	}
}

// TestStagedDivisionMessage tests that the division message embeds the
// original stake preview with a dash index.
func TestStagedDivisionMessage(t *testing.T) {
	t.Parallel()

	original := testStake(4, 50000, 18250, 18279, true)

	rec := emitter.NewRecorder()
	StagedDivision(rec, testEnv, original, token.FromNU(20000), 5)

	if !rec.Contains("~ Original Stake: | - | 0x1111 | 0x2222 | 4 |") {
		t.Errorf("missing original stake preview in:\n%s", rec.Output())
	}
	if !rec.Contains("ORIGINAL STAKE") {
		t.Error("missing original stake banner")
	}
}
