package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// generateTimeSlots генерирует слоты на день для указанного размера компании
// Оба периода (обед и ужин) обрабатываются независимо, результат сливается
// и сортируется по времени. Дедупликация при пересечении сеток периодов
// намеренно не выполняется.
func generateTimeSlots(
	settings *domain.Settings,
	requestDate time.Time,
	partySize int,
	bookings []*domain.Booking,
	now time.Time,
) ([]Slot, error) {
	schedule, ok := settings.ScheduleFor(requestDate)
	if !ok {
		// День без записи в расписании полностью закрыт
		return []Slot{}, nil
	}

	slots := make([]Slot, 0)

	lunchSlots, err := processRange(schedule.Lunch, settings, requestDate, partySize, bookings, now)
	if err != nil {
		return nil, err
	}
	slots = append(slots, lunchSlots...)

	dinnerSlots, err := processRange(schedule.Dinner, settings, requestDate, partySize, bookings, now)
	if err != nil {
		return nil, err
	}
	slots = append(slots, dinnerSlots...)

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots, nil
}

// processRange генерирует слоты одного периода (обед или ужин)
// Кандидаты идут по сетке 15 минут от открытия до последнего времени,
// чей интервал занятости еще помещается до закрытия:
// lastStart = close - mealDuration. Период короче одной длительности
// трапезы не дает ни одного слота.
func processRange(
	timeRange domain.TimeRange,
	settings *domain.Settings,
	requestDate time.Time,
	partySize int,
	bookings []*domain.Booking,
	now time.Time,
) ([]Slot, error) {
	if !timeRange.IsOpen {
		// Закрытый период не дает слотов вообще (без причины "closed")
		return []Slot{}, nil
	}

	openMin, err := timeRange.Start.Minutes()
	if err != nil {
		return nil, err
	}

	closeMin, err := timeRange.End.Minutes()
	if err != nil {
		return nil, err
	}

	lastStart := closeMin - settings.MealDurationMinutes

	// Прошедшие слоты отсекаются только если запрошенная дата - сегодня
	isToday := isSameDay(requestDate, now)
	currentMinutes := now.Hour()*60 + now.Minute()

	slots := make([]Slot, 0)

	for t := openMin; t <= lastStart; t += domain.SlotStepMinutes {
		table := domain.FindAvailableTable(settings.Tables, bookings, t, settings.MealDurationMinutes, partySize)

		isPast := isToday && t < currentMinutes

		slot := Slot{
			StartTime: types.NewTimeStringFromMinutes(t),
			Available: table != nil && !isPast,
		}

		// "past" имеет приоритет над "full"
		switch {
		case isPast:
			slot.Reason = domain.SlotReasonPast
		case table == nil:
			slot.Reason = domain.SlotReasonFull
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
