// Package period converts between staking period indexes and wall-clock
// timestamps. A period is a fixed-length epoch measured from the Unix
// epoch; the chain defines its length in seconds.
package period
