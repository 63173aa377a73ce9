package render

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/stakewatch/stakewatch/internal/emitter"
)

// echoTable renders headers and rows as a bordered table and emits it
// as a single line block. A nil header slice produces a headerless
// key/value style table.
//
// Design decision: Tables are rendered into a buffer and passed through
// the emitter rather than written to a terminal directly, so that table
// output obeys the same sink contract as every other line and tests can
// capture it.
func echoTable(em emitter.Emitter, headers []string, rows [][]string) {
	var buf strings.Builder

	table := tablewriter.NewTable(&buf)
	if len(headers) > 0 {
		table.Header(headers)
	}
	for _, row := range rows {
		// Append cannot fail for plain string rows into a builder.
		_ = table.Append(row)
	}
	_ = table.Render()

	em.Echo(strings.TrimRight(buf.String(), "\n"))
}
