// Package report provides machine-friendly stake report output.
//
// The terminal renderer (internal/render) owns the interactive view;
// this package writes the same data as Markdown or JSON for sharing
// and tool integration. Writers implement the Writer interface so they
// can be used interchangeably and composed for multi-destination
// output.
package report
