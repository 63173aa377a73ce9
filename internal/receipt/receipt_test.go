package receipt

import (
	"testing"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
)

// testReceipt returns a successful receipt fixture.
func testReceipt() model.Receipt {
	return model.Receipt{
		TxHash:      "0xabc123",
		Successful:  true,
		BlockNumber: 1234567,
		BlockHash:   "0xdef456",
		GasUsed:     180000,
	}
}

// TestSummary tests receipt formatting with and without a transaction
// type label.
func TestSummary(t *testing.T) {
	t.Parallel()

	t.Run("with transaction type", func(t *testing.T) {
		t.Parallel()
		rec := emitter.NewRecorder()
		Summary(rec, testReceipt(), "deposit stake")

		expected := "OK | deposit stake | 0xabc123 (180000 gas)\nBlock #1234567 | 0xdef456\n"
		if rec.Output() != expected {
			t.Errorf("got %q, expected %q", rec.Output(), expected)
		}

		ok := rec.Find("OK")
		if ok == nil || ok.Color != emitter.ColorGreen || !ok.Bold {
			t.Error("expected bold green OK marker")
		}
	})

	t.Run("without transaction type", func(t *testing.T) {
		t.Parallel()
		rec := emitter.NewRecorder()
		Summary(rec, testReceipt(), "")

		if rec.Contains("| deposit") {
			t.Errorf("unexpected type label in %q", rec.Output())
		}
		if !rec.Contains("OK | 0xabc123 (180000 gas)") {
			t.Errorf("missing hash line in %q", rec.Output())
		}
	})

	t.Run("failed transaction", func(t *testing.T) {
		t.Parallel()
		r := testReceipt()
		r.Successful = false

		rec := emitter.NewRecorder()
		Summary(rec, r, "deposit stake")

		failed := rec.Find("FAILED")
		if failed == nil {
			t.Fatal("expected FAILED marker")
		}
		if failed.Color != emitter.ColorRed {
			t.Errorf("expected red marker, got %v", failed.Color)
		}
	})
}
