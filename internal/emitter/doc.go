// Package emitter provides the terminal output sink used by all report
// rendering. Styling (bold, color, newline suppression) is passed
// explicitly on every call; no ambient styling state persists between
// calls.
package emitter
