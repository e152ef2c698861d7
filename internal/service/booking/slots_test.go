package booking

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04", value, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func clocks(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeBookableSlots(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		declared []string
		booked   []string // "2006-01-02T15:04"
		now      string
		want     []string
	}{
		{
			name:     "all declared slots open on a future day",
			date:     "2025-07-10",
			declared: []string{"09:00", "10:00"},
			now:      "2025-07-09T00:00",
			want:     []string{"09:00", "10:00"},
		},
		{
			name:     "booked slot is excluded",
			date:     "2025-07-10",
			declared: []string{"09:00", "10:00"},
			booked:   []string{"2025-07-10T09:00"},
			now:      "2025-07-09T00:00",
			want:     []string{"10:00"},
		},
		{
			name:     "past slot is excluded",
			date:     "2025-07-10",
			declared: []string{"09:00", "10:00"},
			now:      "2025-07-10T09:30",
			want:     []string{"10:00"},
		},
		{
			name:     "slot exactly at now is excluded",
			date:     "2025-07-10",
			declared: []string{"09:00", "10:00"},
			now:      "2025-07-10T09:00",
			want:     []string{"10:00"},
		},
		{
			name:     "no declared times",
			date:     "2025-07-10",
			declared: nil,
			now:      "2025-07-09T00:00",
			want:     nil,
		},
		{
			name:     "everything booked",
			date:     "2025-07-10",
			declared: []string{"09:00", "10:00"},
			booked:   []string{"2025-07-10T09:00", "2025-07-10T10:00"},
			now:      "2025-07-09T00:00",
			want:     nil,
		},
		{
			name:     "booking on another day does not block",
			date:     "2025-07-10",
			declared: []string{"09:00"},
			booked:   []string{"2025-07-11T09:00"},
			now:      "2025-07-09T00:00",
			want:     []string{"09:00"},
		},
		{
			name:     "unsorted declared times come back ascending",
			date:     "2025-07-10",
			declared: []string{"14:00", "09:00", "11:30"},
			now:      "2025-07-09T00:00",
			want:     []string{"09:00", "11:30", "14:00"},
		},
		{
			name:     "duplicate declared time appears once",
			date:     "2025-07-10",
			declared: []string{"09:00", "09:00"},
			now:      "2025-07-09T00:00",
			want:     []string{"09:00"},
		},
		{
			name:     "malformed declared entry is skipped",
			date:     "2025-07-10",
			declared: []string{"nope", "10:00"},
			now:      "2025-07-09T00:00",
			want:     []string{"10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booked := make([]time.Time, 0, len(tt.booked))
			for _, b := range tt.booked {
				booked = append(booked, mustTime(t, b))
			}

			got := ComputeBookableSlots(tt.date, tt.declared, booked, mustTime(t, tt.now), time.UTC)

			if !equalStrings(clocks(got), tt.want) {
				t.Errorf("ComputeBookableSlots() = %v, want %v", clocks(got), tt.want)
			}
		})
	}
}

func TestComputeBookableSlotsNeverReturnsPastOrBooked(t *testing.T) {
	now := mustTime(t, "2025-07-10T11:00")
	booked := []time.Time{mustTime(t, "2025-07-10T12:00"), mustTime(t, "2025-07-10T15:00")}
	declared := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "15:00", "18:00"}

	got := ComputeBookableSlots("2025-07-10", declared, booked, now, time.UTC)

	for _, slot := range got {
		if !slot.After(now) {
			t.Errorf("slot %v is not strictly after now %v", slot, now)
		}
		for _, b := range booked {
			if slot.Equal(b) {
				t.Errorf("slot %v matches a booked appointment", slot)
			}
		}
	}

	if want := []string{"13:00", "18:00"}; !equalStrings(clocks(got), want) {
		t.Errorf("ComputeBookableSlots() = %v, want %v", clocks(got), want)
	}
}

func TestCombineDateTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	got, err := CombineDateTime("2025-07-10", "09:30", loc)
	if err != nil {
		t.Fatalf("CombineDateTime() error = %v", err)
	}

	want := time.Date(2025, 7, 10, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime() = %v, want %v", got, want)
	}

	if _, err := CombineDateTime("10/07/2025", "09:30", loc); err == nil {
		t.Error("CombineDateTime() expected error for bad date")
	}
	if _, err := CombineDateTime("2025-07-10", "9h30", loc); err == nil {
		t.Error("CombineDateTime() expected error for bad time")
	}
}

func TestMonthGrid(t *testing.T) {
	now := mustTime(t, "2025-07-10T15:00")
	availability := map[string][]string{
		"2025-07-10": {"09:00"},          // today, 09:00 already passed
		"2025-07-15": {"09:00", "10:00"}, // partly booked
		"2025-07-20": {"11:00"},          // fully booked
		"2025-07-05": {"09:00"},          // past day
	}
	booked := []time.Time{
		mustTime(t, "2025-07-15T09:00"),
		mustTime(t, "2025-07-20T11:00"),
	}

	cells := MonthGrid(2025, time.July, availability, booked, now, time.UTC)

	// July 2025 starts on a Tuesday and ends on a Thursday; a
	// Monday-first grid spans 2025-06-30 through 2025-08-03.
	if len(cells) != 35 {
		t.Fatalf("grid size = %d, want 35", len(cells))
	}
	if cells[0].Date != "2025-06-30" || cells[len(cells)-1].Date != "2025-08-03" {
		t.Fatalf("grid range = %s..%s", cells[0].Date, cells[len(cells)-1].Date)
	}

	byDate := make(map[string]DayState, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c.State
	}

	tests := []struct {
		date string
		want DayState
	}{
		{"2025-06-30", DayOutOfMonth},
		{"2025-08-01", DayOutOfMonth},
		{"2025-07-05", DayPast},
		{"2025-07-09", DayPast},
		{"2025-07-10", DayUnavailable}, // declared time already passed today
		{"2025-07-11", DayUnavailable}, // nothing declared
		{"2025-07-15", DayBookable},
		{"2025-07-20", DayFullyBooked},
	}
	for _, tt := range tests {
		if got := byDate[tt.date]; got != tt.want {
			t.Errorf("state[%s] = %s, want %s", tt.date, got, tt.want)
		}
	}
}
