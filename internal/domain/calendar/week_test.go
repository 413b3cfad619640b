package calendar

import (
	"testing"
	"time"
)

func TestWeek_StartsOnSunday(t *testing.T) {
	// 2025-05-28 es miércoles.
	days := Week(time.Date(2025, 5, 28, 15, 30, 0, 0, time.UTC))

	if DateKey(days[0]) != "2025-05-25" || days[0].Weekday() != time.Sunday {
		t.Fatalf("expected week to start on Sunday 2025-05-25, got %s", days[0])
	}
	if DateKey(days[6]) != "2025-05-31" {
		t.Fatalf("expected week to end on 2025-05-31, got %s", days[6])
	}
}

func TestWeek_CrossesMonthBoundary(t *testing.T) {
	days := Week(day("2025-06-01")) // domingo

	if DateKey(days[0]) != "2025-06-01" {
		t.Fatalf("sunday ref must be first day, got %s", days[0])
	}

	days = Week(day("2025-07-02"))
	if DateKey(days[0]) != "2025-06-29" || DateKey(days[6]) != "2025-07-05" {
		t.Fatalf("unexpected week: %s - %s", days[0], days[6])
	}
}

func TestBuildWeekView_LabelAndHighlights(t *testing.T) {
	v := buildWeekView(day("2025-05-28"), map[string]bool{"2025-05-27": true})

	if v.Label != "May 25 - May 31, 2025" {
		t.Fatalf("unexpected label %q", v.Label)
	}
	if len(v.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(v.Days))
	}
	for _, d := range v.Days {
		if d.Highlighted != (DateKey(d.Date) == "2025-05-27") {
			t.Fatalf("unexpected highlight on %s", DateKey(d.Date))
		}
	}
}
