package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	return f.settings, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSettings() *domain.Settings {
	return &domain.Settings{
		RestaurantName:      "Sabor & Arte",
		MealDurationMinutes: 90,
		ToleranceMinutes:    10,
		Tables: []domain.Table{
			{ID: "t1", Name: "Mesa 1", Seats: 2},
			{ID: "t2", Name: "Mesa 2", Seats: 4},
			{ID: "t3", Name: "Mesa 3", Seats: 6},
		},
		Hours: map[int]domain.DaySchedule{
			// Понедельник: только обед 12:00-15:00
			1: {
				Lunch:  domain.TimeRange{IsOpen: true, Start: "12:00", End: "15:00"},
				Dinner: domain.TimeRange{IsOpen: false},
			},
		},
	}
}

// 2025-10-13 - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local)

func newTestUseCase(settings *domain.Settings, bookings []*domain.Booking, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{settings: settings},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func slotTimes(slots []Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String()
	}
	return result
}

func TestExecute_GeneratesGridUpToLastFittingStart(t *testing.T) {
	// Запрос на будущую дату: ни один слот не в прошлом
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	uc := newTestUseCase(testSettings(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	assert.True(t, resp.DayOpen)
	// Обед 12:00-15:00 при длительности 90 минут: последний старт 13:30
	assert.Equal(t, []string{"12:00", "12:15", "12:30", "12:45", "13:00", "13:15", "13:30"}, slotTimes(resp.Slots))

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
		assert.Empty(t, slot.Reason)
	}
}

func TestExecute_PeriodExactlyOneMealLong(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	settings := testSettings()
	settings.Hours[1] = domain.DaySchedule{
		Lunch: domain.TimeRange{IsOpen: true, Start: "12:00", End: "13:30"},
	}
	uc := newTestUseCase(settings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	// Период ровно в одну трапезу дает единственный слот на открытии
	assert.Equal(t, []string{"12:00"}, slotTimes(resp.Slots))
}

func TestExecute_PeriodShorterThanMeal(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	settings := testSettings()
	settings.Hours[1] = domain.DaySchedule{
		Lunch: domain.TimeRange{IsOpen: true, Start: "12:00", End: "13:00"},
	}
	uc := newTestUseCase(settings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	assert.True(t, resp.DayOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	uc := newTestUseCase(testSettings(), nil, now)

	// Вторник отсутствует в расписании
	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, PartySize: 2})
	require.NoError(t, err)

	assert.False(t, resp.DayOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastSlotsOnlyForToday(t *testing.T) {
	// Сейчас 12:31 того же дня: слоты 12:00, 12:15, 12:30 в прошлом
	now := time.Date(2025, 10, 13, 12, 31, 0, 0, time.Local)
	uc := newTestUseCase(testSettings(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		switch slot.StartTime {
		case "12:00", "12:15", "12:30":
			assert.False(t, slot.Available, "slot %s", slot.StartTime)
			assert.Equal(t, domain.SlotReasonPast, slot.Reason, "slot %s", slot.StartTime)
		default:
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_FutureDateIgnoresCurrentTime(t *testing.T) {
	// Позднее время суток не делает слоты будущей даты прошедшими
	now := time.Date(2025, 10, 1, 23, 59, 0, 0, time.Local)
	uc := newTestUseCase(testSettings(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_FullSlots(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	settings := testSettings()
	// Единственный стол
	settings.Tables = []domain.Table{{ID: "t1", Name: "Mesa 1", Seats: 2}}

	bookings := []*domain.Booking{
		{ID: "b1", TableID: "t1", StartTime: types.TimeString("12:00"), PartySize: 2},
	}
	uc := newTestUseCase(settings, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	// Бронь занимает [12:00, 13:30): свободен только слот 13:30
	for _, slot := range resp.Slots {
		if slot.StartTime == "13:30" {
			assert.True(t, slot.Available)
			assert.Empty(t, slot.Reason)
		} else {
			assert.False(t, slot.Available, "slot %s", slot.StartTime)
			assert.Equal(t, domain.SlotReasonFull, slot.Reason, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_PastOutranksFull(t *testing.T) {
	// Слот одновременно в прошлом и занят - причина "past"
	now := time.Date(2025, 10, 13, 12, 31, 0, 0, time.Local)
	settings := testSettings()
	settings.Tables = []domain.Table{{ID: "t1", Name: "Mesa 1", Seats: 2}}

	bookings := []*domain.Booking{
		{ID: "b1", TableID: "t1", StartTime: types.TimeString("12:00"), PartySize: 2},
	}
	uc := newTestUseCase(settings, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("12:00"), first.StartTime)
	assert.False(t, first.Available)
	assert.Equal(t, domain.SlotReasonPast, first.Reason)
}

func TestExecute_BothPeriodsMergedAndSorted(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	settings := testSettings()
	settings.Hours[1] = domain.DaySchedule{
		Lunch:  domain.TimeRange{IsOpen: true, Start: "12:00", End: "13:30"},
		Dinner: domain.TimeRange{IsOpen: true, Start: "19:00", End: "20:30"},
	}
	uc := newTestUseCase(settings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"12:00", "19:00"}, slotTimes(resp.Slots))
}

func TestExecute_AgreesWithAssignTable(t *testing.T) {
	// Слот доступен тогда и только тогда, когда назначение стола успешно
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	settings := testSettings()
	bookings := []*domain.Booking{
		{ID: "b1", TableID: "t2", StartTime: types.TimeString("12:30"), PartySize: 4},
		{ID: "b2", TableID: "t3", StartTime: types.TimeString("12:30"), PartySize: 6},
	}
	uc := newTestUseCase(settings, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, PartySize: 3})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		minutes, err := slot.StartTime.Minutes()
		require.NoError(t, err)

		assigned := domain.AssignTable(settings, bookings, minutes, 3)
		assert.Equal(t, assigned != "", slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_Validation(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.Local)
	uc := newTestUseCase(testSettings(), nil, now)

	_, err := uc.Execute(context.Background(), &Request{PartySize: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, PartySize: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, PartySize: domain.MaxPartySize + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
