// Package model defines the read-only views rendered by stakewatch:
// stakes, stakers, wallet accounts, transaction receipts, and the
// structured stake report used for machine-readable output.
//
// All views are constructed by the caller (typically from a snapshot
// file) immediately before rendering. Renderers read fields and never
// write them.
package model
