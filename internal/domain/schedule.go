package domain

import (
	"sort"
	"time"
)

// ParseDate parses a "YYYY-MM-DD" string as a local calendar date.
// Local interpretation avoids the timezone-induced off-by-one day shift
// that UTC parsing would introduce for negative-offset zones.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// IsDateOpen returns true if the restaurant serves at least one meal
// period on the given date. A date whose day of week has no schedule
// entry is closed.
func IsDateOpen(date time.Time, settings *Settings) bool {
	schedule, ok := settings.ScheduleFor(date)
	if !ok {
		return false
	}
	return schedule.Lunch.IsOpen || schedule.Dinner.IsOpen
}

// IntervalsOverlap reports whether two half-open intervals
// [startA, endA) and [startB, endB) overlap. Intervals that merely touch
// at an endpoint do not overlap: a meal ending at 13:30 frees the table
// for a booking starting at 13:30.
func IntervalsOverlap(startA, endA, startB, endB int) bool {
	lo := startA
	if startB > lo {
		lo = startB
	}
	hi := endA
	if endB < hi {
		hi = endB
	}
	return lo < hi
}

// FindAvailableTable picks the table for a party at the given slot:
// among tables with enough seats, sorted ascending by capacity (stable,
// so equal-seat tables keep their configured order), the first one with
// no booking overlapping [slotStart, slotStart+duration) wins.
// Returns nil when no table fits or all fitting tables are occupied.
//
// Both the availability engine and booking creation go through this
// function, so the "available" flag shown to the customer and the table
// assigned on submit always agree for the same snapshot.
func FindAvailableTable(
	tables []Table,
	dayBookings []*Booking,
	slotStart int,
	mealDurationMinutes int,
	partySize int,
) *Table {
	slotEnd := slotStart + mealDurationMinutes

	suitable := make([]Table, 0, len(tables))
	for _, t := range tables {
		if t.Fits(partySize) {
			suitable = append(suitable, t)
		}
	}
	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].Seats < suitable[j].Seats
	})

	for i := range suitable {
		table := suitable[i]

		occupied := false
		for _, booking := range dayBookings {
			if booking.TableID != table.ID {
				continue
			}

			bookingStart, bookingEnd, err := booking.OccupiesInterval(mealDurationMinutes)
			if err != nil {
				// Бронирование с нечитаемым временем не может занимать стол
				continue
			}

			if IntervalsOverlap(slotStart, slotEnd, bookingStart, bookingEnd) {
				occupied = true
				break
			}
		}

		if !occupied {
			return &table
		}
	}

	return nil
}

// AssignTable resolves the table id for a booking request, or "" when
// none is available. dayBookings must already be filtered to the
// requested date.
func AssignTable(
	settings *Settings,
	dayBookings []*Booking,
	slotStart int,
	partySize int,
) string {
	table := FindAvailableTable(settings.Tables, dayBookings, slotStart, settings.MealDurationMinutes, partySize)
	if table == nil {
		return ""
	}
	return table.ID
}
