package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/stakewatch/stakewatch/internal/model"
)

// MarkdownWriter outputs stake reports as GitHub Flavored Markdown,
// one section per staker with a stake table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.StakeReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Stake Report")
	md.PlainText("")

	overview := [][]string{
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Current Period", strconv.Itoa(report.CurrentPeriod)},
		{"Stakers", strconv.Itoa(len(report.Stakers))},
	}
	if report.Network != "" {
		overview = append(overview, []string{"Network", report.Network})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   overview,
	})
	md.PlainText("")

	for _, staker := range report.Stakers {
		w.writeStaker(md, staker)
	}

	return len(md.String()), md.Build()
}

// writeStaker writes one staker section with its status table and
// stake table.
func (w *MarkdownWriter) writeStaker(md *markdown.Markdown, staker model.StakerSummary) {
	md.H2("Staker `" + staker.Address + "`")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Worker", "`" + staker.Worker + "`"},
			{"Status", staker.Status},
			{"Restaking", staker.Restaking},
			{"Winding Down", staker.WindingDown},
			{"Unclaimed Fees", staker.UnclaimedFees},
			{"Min Reward Rate", staker.MinRewardRate},
		},
	})
	md.PlainText("")

	rows := make([][]string, 0, len(staker.Stakes))
	for _, stake := range staker.Stakes {
		active := "Yes"
		if !stake.Active {
			active = "No"
		}
		rows = append(rows, []string{
			strconv.Itoa(stake.Index),
			stake.Value,
			strconv.Itoa(stake.Remaining),
			strconv.Itoa(stake.Enactment),
			strconv.Itoa(stake.Termination),
			active,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Idx", "Value", "Remaining", "Enactment", "Termination", "Active"},
		Rows:   rows,
	})
	md.PlainText("")
}
