package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Booking represents a confirmed table reservation.
// Date, start time, table and party size are immutable after creation;
// there is no reschedule flow in this service.
type Booking struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time // calendar date only, time part is zero
	StartTime     types.TimeString
	PartySize     int
	TableID       string // references Settings.Tables at creation time

	CreatedAt time.Time
}

// OccupiesInterval returns the booking's half-open occupancy interval
// [start, start+duration) in minutes since midnight. The duration is the
// restaurant-wide meal duration, uniform across party sizes.
func (b *Booking) OccupiesInterval(mealDurationMinutes int) (start, end int, err error) {
	start, err = b.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, start + mealDurationMinutes, nil
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date *time.Time // конкретная дата (опционально, если nil - все бронирования)
}
