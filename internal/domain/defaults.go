package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Default configuration values, seeded on first read when no settings
// row exists yet
const (
	DefaultRestaurantName      = "Sabor & Arte"
	DefaultMealDurationMinutes = 90
	DefaultToleranceMinutes    = 10
)

// DefaultSettings returns the out-of-the-box restaurant configuration:
// five tables, lunch and dinner Monday through Saturday, lunch-only
// Sunday.
func DefaultSettings() *Settings {
	weekdaySchedule := DaySchedule{
		Lunch:  TimeRange{IsOpen: true, Start: types.TimeString("12:00"), End: types.TimeString("15:00")},
		Dinner: TimeRange{IsOpen: true, Start: types.TimeString("19:00"), End: types.TimeString("23:00")},
	}
	sundaySchedule := DaySchedule{
		Lunch:  TimeRange{IsOpen: true, Start: types.TimeString("12:00"), End: types.TimeString("16:00")},
		Dinner: TimeRange{IsOpen: false, Start: types.TimeString("19:00"), End: types.TimeString("23:00")},
	}

	return &Settings{
		RestaurantName:      DefaultRestaurantName,
		MealDurationMinutes: DefaultMealDurationMinutes,
		ToleranceMinutes:    DefaultToleranceMinutes,
		CalendarID:          "",
		Tables: []Table{
			{ID: "t1", Name: "Mesa 1", Seats: 2},
			{ID: "t2", Name: "Mesa 2", Seats: 2},
			{ID: "t3", Name: "Mesa 3", Seats: 4},
			{ID: "t4", Name: "Mesa 4", Seats: 4},
			{ID: "t5", Name: "Mesa 5", Seats: 6},
		},
		Hours: map[int]DaySchedule{
			0: sundaySchedule,
			1: weekdaySchedule,
			2: weekdaySchedule,
			3: weekdaySchedule,
			4: weekdaySchedule,
			5: weekdaySchedule,
			6: weekdaySchedule,
		},
	}
}
