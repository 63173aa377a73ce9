// Package snapshot loads chain-state snapshot files and adapts them to
// the collaborator contracts the renderers consume.
//
// A snapshot is a YAML export of already-fetched staking state: chain
// identity, the current period, stakers with their stake lists, and
// wallet account balances. stakewatch never talks to a chain itself;
// the snapshot is its only data source.
package snapshot
