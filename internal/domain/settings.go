package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Table represents a physical table in the restaurant.
// Seat capacity determines eligibility for a party and never changes
// during a scheduling decision.
type Table struct {
	ID    string
	Name  string
	Seats int
}

// Fits returns true if the table can seat the given party
func (t *Table) Fits(partySize int) bool {
	return t.Seats >= partySize
}

// TimeRange represents one meal period (lunch or dinner) within a day
type TimeRange struct {
	IsOpen bool
	Start  types.TimeString
	End    types.TimeString
}

// DaySchedule holds the two meal periods of a single day of week
type DaySchedule struct {
	Lunch  TimeRange
	Dinner TimeRange
}

// IsClosed returns true if both meal periods are closed
func (d *DaySchedule) IsClosed() bool {
	return !d.Lunch.IsOpen && !d.Dinner.IsOpen
}

// Settings represents the restaurant configuration.
// Hours maps day of week (0=Sunday..6=Saturday) to a DaySchedule;
// a missing entry means the restaurant is fully closed that day.
type Settings struct {
	RestaurantName      string
	MealDurationMinutes int
	ToleranceMinutes    int
	CalendarID          string
	Tables              []Table
	Hours               map[int]DaySchedule

	UpdatedAt time.Time
}

// ScheduleFor resolves the day schedule for the given calendar date.
// The second return value is false when no schedule entry exists.
func (s *Settings) ScheduleFor(date time.Time) (DaySchedule, bool) {
	schedule, ok := s.Hours[int(date.Weekday())]
	return schedule, ok
}

// TableByID looks up a table by its identifier
func (s *Settings) TableByID(id string) *Table {
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			return &s.Tables[i]
		}
	}
	return nil
}
