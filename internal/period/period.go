package period

import "time"

// DefaultSecondsPerPeriod is the canonical period length of one day.
// Snapshots may override this for testnets with shorter periods.
const DefaultSecondsPerPeriod = 24 * 60 * 60

// TimeAt returns the timestamp of the given period. When startOfPeriod
// is true it returns the instant the period begins; otherwise it returns
// the instant the period ends (the start of the following period).
// Timestamps are in UTC so formatted output is deterministic.
func TimeAt(period int, secondsPerPeriod int, startOfPeriod bool) time.Time {
	p := int64(period)
	if !startOfPeriod {
		p++
	}
	return time.Unix(p*int64(secondsPerPeriod), 0).UTC()
}

// At returns the period index containing the given timestamp.
// It is the inverse of TimeAt for start-of-period timestamps.
func At(t time.Time, secondsPerPeriod int) int {
	return int(t.Unix() / int64(secondsPerPeriod))
}
