package tool

import (
	"reflect"
	"testing"
)

func TestWeekdayFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"monday", "monday"},
		{"  Friday ", "friday"},
		{"2024-03-04", "monday"},
		{"2099-01-01", "thursday"},
		{"not-a-date", "monday"},
		{"", "monday"},
	}
	for _, tc := range cases {
		if got := weekdayFor(tc.in); got != tc.want {
			t.Fatalf("weekdayFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckAvailabilityNamedBarber(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	out := s.CheckAvailability("monday", "mike")
	if out.Status != StatusOK {
		t.Fatalf("status = %s", out.Status)
	}
	if out.Barber != "Mike" || out.Weekday != "monday" {
		t.Fatalf("unexpected result: %#v", out)
	}
	want := []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"}
	if !reflect.DeepEqual(out.Slots, want) {
		t.Fatalf("slots = %v, want %v", out.Slots, want)
	}
}

func TestCheckAvailabilityUnknownBarber(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	out := s.CheckAvailability("monday", "Bob")
	if out.Status != StatusBarberNotFound {
		t.Fatalf("status = %s, want %s", out.Status, StatusBarberNotFound)
	}
	if !reflect.DeepEqual(out.Barbers, []string{"Mike", "Tony", "Alex"}) {
		t.Fatalf("barbers = %v", out.Barbers)
	}
}

func TestCheckAvailabilityAllBarbers(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	out := s.CheckAvailability("monday", "")
	if out.Status != StatusOK {
		t.Fatalf("status = %s", out.Status)
	}
	if len(out.ByBarber) != 2 {
		t.Fatalf("monday has Mike and Tony only, got %v", out.ByBarber)
	}
	if _, ok := out.ByBarber["Alex"]; ok {
		t.Fatal("Alex has no monday slots and must be omitted")
	}
}

func TestCheckAvailabilityEmptyDay(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	// 2099-01-01 is a thursday; nobody is scheduled thursdays.
	out := s.CheckAvailability("2099-01-01", "")
	if out.Weekday != "thursday" {
		t.Fatalf("weekday = %s, want thursday", out.Weekday)
	}
	if len(out.ByBarber) != 0 {
		t.Fatalf("expected no open slots, got %v", out.ByBarber)
	}
}

func TestCheckAvailabilityMalformedDateFallsBackToMonday(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	out := s.CheckAvailability("not-a-date", "Mike")
	if out.Weekday != "monday" {
		t.Fatalf("weekday = %s, want monday fallback", out.Weekday)
	}
	if len(out.Slots) != 5 {
		t.Fatalf("slots = %v, want Mike's monday list", out.Slots)
	}
}

func TestOpenSlotsUnionDedupes(t *testing.T) {
	t.Parallel()

	s := newTestSet()

	slots, barberErr := s.openSlots("monday", "")
	if barberErr != nil {
		t.Fatalf("unexpected barber error: %#v", barberErr)
	}

	seen := map[string]int{}
	for _, slot := range slots {
		seen[slot]++
	}
	// 10:00 AM and 11:00 AM appear for both Mike and Tony.
	if seen["10:00 AM"] != 1 || seen["11:00 AM"] != 1 {
		t.Fatalf("union must dedupe shared slots: %v", slots)
	}
	if slots[0] != "9:00 AM" {
		t.Fatalf("union must keep fixed barber order, got %v", slots)
	}
}
