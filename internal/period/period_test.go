package period

import (
	"testing"
	"time"
)

// TestTimeAt tests period to timestamp conversion.
func TestTimeAt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		period           int
		secondsPerPeriod int
		startOfPeriod    bool
		expected         time.Time
	}{
		{
			name:             "period zero start",
			period:           0,
			secondsPerPeriod: DefaultSecondsPerPeriod,
			startOfPeriod:    true,
			expected:         time.Unix(0, 0).UTC(),
		},
		{
			name:             "period zero end",
			period:           0,
			secondsPerPeriod: DefaultSecondsPerPeriod,
			startOfPeriod:    false,
			expected:         time.Unix(86400, 0).UTC(),
		},
		{
			name:             "daily period start",
			period:           18250,
			secondsPerPeriod: DefaultSecondsPerPeriod,
			startOfPeriod:    true,
			expected:         time.Unix(18250*86400, 0).UTC(),
		},
		{
			name:             "hourly testnet period",
			period:           10,
			secondsPerPeriod: 3600,
			startOfPeriod:    true,
			expected:         time.Unix(36000, 0).UTC(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := TimeAt(tc.period, tc.secondsPerPeriod, tc.startOfPeriod)
			if !got.Equal(tc.expected) {
				t.Errorf("got %v, expected %v", got, tc.expected)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC location, got %v", got.Location())
			}
		})
	}
}

// TestAt tests that At inverts TimeAt for start-of-period timestamps.
func TestAt(t *testing.T) {
	t.Parallel()

	for _, p := range []int{0, 1, 100, 18250} {
		start := TimeAt(p, DefaultSecondsPerPeriod, true)
		if got := At(start, DefaultSecondsPerPeriod); got != p {
			t.Errorf("At(TimeAt(%d)) = %d, expected %d", p, got, p)
		}
	}

	// A timestamp in the middle of a period belongs to that period.
	mid := TimeAt(100, DefaultSecondsPerPeriod, true).Add(12 * time.Hour)
	if got := At(mid, DefaultSecondsPerPeriod); got != 100 {
		t.Errorf("mid-period timestamp mapped to %d, expected 100", got)
	}
}
