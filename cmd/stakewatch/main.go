// Package main provides the entry point for the stakewatch CLI.
//
// stakewatch renders terminal reports for proof-of-stake staking
// positions: per-account stake lists, staker directory summaries,
// staged-stake previews, and wallet account tables. All chain state
// comes from a locally supplied YAML snapshot file.
//
// Usage:
//
//	stakewatch list --snapshot snapshot.yml
//	stakewatch stakers --snapshot snapshot.yml
//
// See --help for all available options.
package main

// main is the entry point for stakewatch.
func main() {
	Execute()
}
