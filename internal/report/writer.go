package report

import (
	"io"

	"github.com/stakewatch/stakewatch/internal/model"
)

// Writer defines the interface for stake report output.
// Implementations write the report in a specific format.
//
// Design decision: We use an interface rather than format flags on a
// single writer so destinations (stdout, files) and formats compose
// freely, and so new formats can be added without touching existing
// ones.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.StakeReport) (int, error)
}

// MultiWriter writes a report to multiple Writers simultaneously,
// e.g. terminal and file at once.
//
// Design decision: This is a separate type rather than io.MultiWriter
// because our Writer interface writes reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.StakeReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
