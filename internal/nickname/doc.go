// Package nickname derives deterministic display nicknames and colored
// symbol pairs from account addresses. Nicknames make long hex
// addresses recognizable at a glance in the staker directory; the same
// address always yields the same nickname and symbols.
package nickname
