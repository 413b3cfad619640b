package calendar

import (
	"reflect"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMarkDates_DedupAndFixedOrder(t *testing.T) {
	entries := []Entry{
		{Date: day("2025-05-25"), Category: CategoryAppointment},
		{Date: day("2025-05-25"), Category: CategoryMedication},
		{Date: day("2025-05-25"), Category: CategoryMedication},
		{Date: day("2025-05-10"), Category: CategoryMedication},
	}

	got := MarkDates(entries, time.Time{})

	if len(got) != 2 {
		t.Fatalf("expected 2 marked days, got %d: %#v", len(got), got)
	}
	want := []Marker{
		{Key: CategoryMedication, Color: "#10B981"},
		{Key: CategoryAppointment, Color: "#3B82F6"},
	}
	if !reflect.DeepEqual(got["2025-05-25"].Markers, want) {
		t.Fatalf("unexpected markers: %#v", got["2025-05-25"].Markers)
	}
	if got["2025-05-10"].Selected {
		t.Fatalf("zero selected must not mark any day")
	}
}

func TestMarkDates_SelectedMergesWithExisting(t *testing.T) {
	entries := []Entry{{Date: day("2025-05-25"), Category: CategoryAppointment}}

	got := MarkDates(entries, day("2025-05-25"))
	dm := got["2025-05-25"]
	if !dm.Selected || len(dm.Markers) != 1 || dm.Markers[0].Key != CategoryAppointment {
		t.Fatalf("expected selected merged with appointment marker, got %#v", dm)
	}
}

func TestMarkDates_SelectedWithoutRecords(t *testing.T) {
	got := MarkDates(nil, day("2025-06-01"))

	if len(got) != 1 {
		t.Fatalf("expected only the selected day, got %#v", got)
	}
	dm, ok := got["2025-06-01"]
	if !ok || !dm.Selected || len(dm.Markers) != 0 {
		t.Fatalf("expected bare selected day, got %#v", dm)
	}
}

func TestMarkDates_IsDeterministic(t *testing.T) {
	entries := []Entry{
		{Date: day("2025-05-25"), Category: CategoryAppointment},
		{Date: day("2025-05-26"), Category: CategoryMedication},
		{Date: day("2025-05-25"), Category: CategoryMedication},
	}
	reversed := []Entry{entries[2], entries[1], entries[0]}

	a := MarkDates(entries, day("2025-05-26"))
	b := MarkDates(reversed, day("2025-05-26"))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected same result regardless of input order:\n%#v\n%#v", a, b)
	}
}

func TestMarkDates_IgnoresUnknownCategoryAndZeroDate(t *testing.T) {
	got := MarkDates([]Entry{
		{Date: day("2025-05-25"), Category: "lab"},
		{Category: CategoryMedication},
	}, time.Time{})

	if len(got) != 0 {
		t.Fatalf("expected no marks, got %#v", got)
	}
}
