// Package config defines the runtime configuration for stakewatch.
// Configuration is assembled from CLI flags and an optional .stakewatch
// YAML file, validated once up front, and passed through the
// application by value rather than through global state.
package config
