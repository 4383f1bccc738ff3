package domain

// SlotStepMinutes is the fixed grid step for candidate reservation times
const SlotStepMinutes = 15

// Business validation constants
const (
	MinMealDurationMinutes = 15
	MaxMealDurationMinutes = 480 // 8 hours
	MinToleranceMinutes    = 0
	MaxToleranceMinutes    = 120
	MaxPartySize           = 100
	MaxCustomerNameLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
