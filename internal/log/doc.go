// Package log provides secure structured logging for stakewatch.
// Snapshot files and config paths can sit next to wallet keystores, so
// the handler sanitizes key material and credentials before any record
// reaches the underlying slog handler.
package log
