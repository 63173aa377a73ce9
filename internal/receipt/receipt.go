package receipt

import (
	"fmt"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/model"
)

// Summary renders a transaction receipt's details. The optional
// transactionType is a semantic label ("deposit stake", "set worker")
// shown alongside the hash; pass the empty string to omit it.
//
// Layout:
//
//	OK | <type> | <tx hash> (<gas> gas)
//	Block #<number> | <block hash>
//
// A failed transaction leads with "FAILED" in red instead of "OK".
func Summary(em emitter.Emitter, r model.Receipt, transactionType string) {
	if r.Successful {
		em.Echo("OK", emitter.WithColor(emitter.ColorGreen), emitter.WithBold(), emitter.WithNoNewline())
	} else {
		em.Echo("FAILED", emitter.WithColor(emitter.ColorRed), emitter.WithBold(), emitter.WithNoNewline())
	}

	if transactionType != "" {
		em.Echo(fmt.Sprintf(" | %s | %s", transactionType, r.TxHash),
			emitter.WithColor(emitter.ColorYellow), emitter.WithNoNewline())
	} else {
		em.Echo(fmt.Sprintf(" | %s", r.TxHash),
			emitter.WithColor(emitter.ColorYellow), emitter.WithNoNewline())
	}

	em.Echo(fmt.Sprintf(" (%d gas)", r.GasUsed))
	em.Echo(fmt.Sprintf("Block #%d | %s", r.BlockNumber, r.BlockHash))
}
