package booking

import (
	"fmt"
	"sort"
	"time"
)

// SlotDurationMinutes is the fixed length of every appointment.
const SlotDurationMinutes = 50

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// CombineDateTime builds the slot start instant from a calendar date
// ("2006-01-02") and a clock time ("15:04") in the practice timezone.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	c, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", clock, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}

// ComputeBookableSlots returns the start instants a patient can still book
// on date: the declared times minus already-booked starts minus anything
// not strictly after now. The result is sorted ascending. Malformed
// declared entries are skipped.
func ComputeBookableSlots(date string, declared []string, bookedStarts []time.Time, now time.Time, loc *time.Location) []time.Time {
	if len(declared) == 0 {
		return nil
	}

	// booked starts keyed at minute precision; equality, not overlap,
	// since every appointment has the same fixed duration
	booked := make(map[int64]struct{}, len(bookedStarts))
	for _, b := range bookedStarts {
		booked[b.Unix()/60] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(declared))
	slots := make([]time.Time, 0, len(declared))
	for _, clock := range declared {
		start, err := CombineDateTime(date, clock, loc)
		if err != nil {
			continue
		}
		key := start.Unix() / 60
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// same-moment bookings are rejected, strictly after only
		if !start.After(now) {
			continue
		}
		if _, taken := booked[key]; taken {
			continue
		}
		slots = append(slots, start)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}

// DayState classifies one cell of the month grid.
type DayState string

const (
	DayOutOfMonth  DayState = "out_of_month"
	DayPast        DayState = "past"
	DayUnavailable DayState = "unavailable"
	DayFullyBooked DayState = "fully_booked"
	DayBookable    DayState = "bookable"
)

// DayCell is one cell of the rendered month grid.
type DayCell struct {
	Date  string   `json:"date"`
	State DayState `json:"state"`
}

// MonthGrid classifies every day of the month's week grid, including the
// leading and trailing adjacent-month days that pad the first and last
// week rows (weeks start on Monday). Only DayBookable cells are
// interactive. A day whose declared times have all passed yields no
// future slots and is classified by what remains, never as bookable.
func MonthGrid(year int, month time.Month, availability map[string][]string, bookedStarts []time.Time, now time.Time, loc *time.Location) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -mondayOffset(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-mondayOffset(last.Weekday()))

	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)

	var cells []DayCell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		cells = append(cells, DayCell{Date: key, State: classifyDay(d, key, month, today, availability, bookedStarts, now, loc)})
	}
	return cells
}

func classifyDay(d time.Time, key string, month time.Month, today time.Time, availability map[string][]string, bookedStarts []time.Time, now time.Time, loc *time.Location) DayState {
	if d.Month() != month {
		return DayOutOfMonth
	}
	if d.Before(today) {
		return DayPast
	}

	declared := availability[key]
	if len(declared) == 0 {
		return DayUnavailable
	}
	if len(ComputeBookableSlots(key, declared, bookedStarts, now, loc)) > 0 {
		return DayBookable
	}

	// nothing bookable: either every future slot is taken, or (today
	// only) every declared time has already passed
	if len(ComputeBookableSlots(key, declared, nil, now, loc)) == 0 {
		return DayUnavailable
	}
	return DayFullyBooked
}

// mondayOffset returns how many days w is past Monday.
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % 7
}
