// Package render produces the human-readable staking reports: stake
// lists, the staker directory, staged-stake previews, post-transaction
// confirmations, and account balance tables.
//
// Every renderer is a pure function of its input views aside from
// writing to the emitter: no view is mutated, no state is kept between
// calls, and input ordering is preserved (stakes within a staker are
// the one exception; they are always sorted by their ordering key).
// Malformed or absent values are handled by sentinel checks, never by
// errors; collaborator calls are assumed to have already succeeded.
package render
