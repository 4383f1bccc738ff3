package calendar

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "b1",
		CustomerName:  "Ana Pereira",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "+351 912 345 678",
		Date:          time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local),
		StartTime:     types.TimeString("12:30"),
		PartySize:     4,
		TableID:       "t2",
	}
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		RestaurantName:      "Sabor & Arte",
		MealDurationMinutes: 90,
	}
}

func TestBuildEventURL(t *testing.T) {
	eventURL, err := BuildEventURL(testBooking(), testSettings())
	require.NoError(t, err)

	parsed, err := url.Parse(eventURL)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", parsed.Host)

	params := parsed.Query()
	assert.Equal(t, "TEMPLATE", params.Get("action"))
	assert.Equal(t, "4 Ana Pereira", params.Get("text"))
	assert.Equal(t, "+351 912 345 678", params.Get("location"))
	assert.Equal(t, "Reserva confirmada.\nEmail: ana@example.com", params.Get("details"))
	assert.Empty(t, params.Get("add"))

	// Интервал события: локальный старт в UTC плюс длительность трапезы
	start := time.Date(2025, 10, 13, 12, 30, 0, 0, time.Local).UTC()
	end := start.Add(90 * time.Minute)
	expected := fmt.Sprintf("%s/%s", start.Format("20060102T150405Z"), end.Format("20060102T150405Z"))
	assert.Equal(t, expected, params.Get("dates"))
}

func TestBuildEventURL_LocationFallsBackToRestaurantName(t *testing.T) {
	booking := testBooking()
	booking.CustomerPhone = ""

	eventURL, err := BuildEventURL(booking, testSettings())
	require.NoError(t, err)

	parsed, err := url.Parse(eventURL)
	require.NoError(t, err)
	assert.Equal(t, "Sabor & Arte", parsed.Query().Get("location"))
}

func TestBuildEventURL_IncludesCalendarID(t *testing.T) {
	settings := testSettings()
	settings.CalendarID = "reservas@saborarte.example.com"

	eventURL, err := BuildEventURL(testBooking(), settings)
	require.NoError(t, err)

	parsed, err := url.Parse(eventURL)
	require.NoError(t, err)
	assert.Equal(t, "reservas@saborarte.example.com", parsed.Query().Get("add"))
}

func TestBuildEventURL_InvalidStartTime(t *testing.T) {
	booking := testBooking()
	booking.StartTime = "garbage"

	_, err := BuildEventURL(booking, testSettings())
	assert.ErrorIs(t, err, ErrInvalidBooking)
}
