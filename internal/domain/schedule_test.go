package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func testSettings() *Settings {
	return &Settings{
		RestaurantName:      "Sabor & Arte",
		MealDurationMinutes: 90,
		ToleranceMinutes:    10,
		Tables: []Table{
			{ID: "t1", Name: "Mesa 1", Seats: 2},
			{ID: "t2", Name: "Mesa 2", Seats: 4},
			{ID: "t3", Name: "Mesa 3", Seats: 6},
		},
		Hours: map[int]DaySchedule{
			// Понедельник: обед и ужин
			1: {
				Lunch:  TimeRange{IsOpen: true, Start: "12:00", End: "15:00"},
				Dinner: TimeRange{IsOpen: true, Start: "19:00", End: "23:00"},
			},
		},
	}
}

func booking(tableID string, startTime types.TimeString) *Booking {
	return &Booking{
		ID:        "b-" + tableID + "-" + string(startTime),
		TableID:   tableID,
		StartTime: startTime,
		PartySize: 2,
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-10-13")
	require.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.October, date.Month())
	assert.Equal(t, 13, date.Day())
	assert.Equal(t, time.Monday, date.Weekday())

	_, err = ParseDate("13/10/2025")
	assert.Error(t, err)
}

func TestIsDateOpen(t *testing.T) {
	settings := testSettings()

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local)
	assert.True(t, IsDateOpen(monday, settings))

	// День без записи в расписании закрыт
	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.Local)
	assert.False(t, IsDateOpen(tuesday, settings))

	// День с записью, но оба периода закрыты
	settings.Hours[1] = DaySchedule{
		Lunch:  TimeRange{IsOpen: false},
		Dinner: TimeRange{IsOpen: false},
	}
	assert.False(t, IsDateOpen(monday, settings))
}

func TestIntervalsOverlap(t *testing.T) {
	// Полуоткрытые интервалы: касание концами не считается пересечением
	assert.False(t, IntervalsOverlap(720, 810, 810, 900))
	assert.False(t, IntervalsOverlap(810, 900, 720, 810))

	assert.True(t, IntervalsOverlap(720, 810, 800, 890))
	assert.True(t, IntervalsOverlap(720, 810, 700, 730))
	assert.True(t, IntervalsOverlap(720, 810, 730, 790))
	assert.False(t, IntervalsOverlap(720, 810, 900, 990))
}

func TestFindAvailableTable_SmallestFit(t *testing.T) {
	settings := testSettings()

	// Для компании из 3 человек подходит стол минимальной вместимости
	table := FindAvailableTable(settings.Tables, nil, 720, 90, 3)
	require.NotNil(t, table)
	assert.Equal(t, "t2", table.ID)

	// Для пары - двухместный
	table = FindAvailableTable(settings.Tables, nil, 720, 90, 2)
	require.NotNil(t, table)
	assert.Equal(t, "t1", table.ID)
}

func TestFindAvailableTable_FallsBackToLarger(t *testing.T) {
	settings := testSettings()

	// Четырехместный занят пересекающейся бронью - достается шестиместный
	bookings := []*Booking{booking("t2", "12:00")}

	table := FindAvailableTable(settings.Tables, bookings, 720, 90, 3)
	require.NotNil(t, table)
	assert.Equal(t, "t3", table.ID)
}

func TestFindAvailableTable_FreesAtBookingEnd(t *testing.T) {
	settings := testSettings()

	// Бронь 12:00 занимает [12:00, 13:30) - слот 13:30 уже свободен
	bookings := []*Booking{booking("t2", "12:00")}

	table := FindAvailableTable(settings.Tables, bookings, 810, 90, 3)
	require.NotNil(t, table)
	assert.Equal(t, "t2", table.ID)
}

func TestFindAvailableTable_NoCapacity(t *testing.T) {
	settings := testSettings()

	// Никакой стол не вмещает 10 человек
	table := FindAvailableTable(settings.Tables, nil, 720, 90, 10)
	assert.Nil(t, table)
}

func TestFindAvailableTable_AllOccupied(t *testing.T) {
	settings := testSettings()

	bookings := []*Booking{
		booking("t1", "12:30"),
		booking("t2", "12:30"),
		booking("t3", "12:30"),
	}

	table := FindAvailableTable(settings.Tables, bookings, 720, 90, 2)
	assert.Nil(t, table)
}

func TestFindAvailableTable_SkipsUnparseableBookingTime(t *testing.T) {
	settings := testSettings()

	// Бронирование с нечитаемым временем не занимает стол
	bookings := []*Booking{booking("t1", "garbage")}

	table := FindAvailableTable(settings.Tables, bookings, 720, 90, 2)
	require.NotNil(t, table)
	assert.Equal(t, "t1", table.ID)
}

func TestFindAvailableTable_StableOrderForEqualSeats(t *testing.T) {
	tables := []Table{
		{ID: "a", Name: "Mesa A", Seats: 4},
		{ID: "b", Name: "Mesa B", Seats: 4},
	}

	// При равной вместимости сохраняется настроенный порядок
	table := FindAvailableTable(tables, nil, 720, 90, 4)
	require.NotNil(t, table)
	assert.Equal(t, "a", table.ID)

	bookings := []*Booking{booking("a", "12:00")}
	table = FindAvailableTable(tables, bookings, 720, 90, 4)
	require.NotNil(t, table)
	assert.Equal(t, "b", table.ID)
}

func TestAssignTable(t *testing.T) {
	settings := testSettings()

	assert.Equal(t, "t2", AssignTable(settings, nil, 720, 3))
	assert.Equal(t, "", AssignTable(settings, nil, 720, 10))
}
