package clock

import (
	"testing"
	"time"
)

func TestToday_UsesUTCDate(t *testing.T) {
	art := time.FixedZone("ART", -3*3600)

	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC), time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
		// 23:30 en UTC-3 ya es el 26 en UTC.
		{time.Date(2025, 5, 25, 23, 30, 0, 0, art), time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := Today(tc.now); !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Fatalf("Today(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}
