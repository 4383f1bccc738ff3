package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "b1",
		CustomerName: "Ana Pereira",
		Date:         time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local),
		StartTime:    types.TimeString("12:30"),
		PartySize:    4,
	}
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		RestaurantName:   "Sabor & Arte",
		ToleranceMinutes: 10,
	}
}

func TestGenerateConfirmation(t *testing.T) {
	var received ConfirmationRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/confirmations", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ConfirmationResponse{Message: "Olá Ana, mesa reservada!"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	message, err := client.GenerateConfirmation(context.Background(), testBooking(), testSettings())
	require.NoError(t, err)
	assert.Equal(t, "Olá Ana, mesa reservada!", message)

	assert.Equal(t, "Sabor & Arte", received.RestaurantName)
	assert.Equal(t, "Ana Pereira", received.CustomerName)
	assert.Equal(t, "2025-10-13", received.Date)
	assert.Equal(t, "12:30", received.StartTime)
	assert.Equal(t, 4, received.PartySize)
	assert.Equal(t, 10, received.ToleranceMinutes)
}

func TestGenerateConfirmation_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GenerateConfirmation(context.Background(), testBooking(), testSettings())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGenerateConfirmation_EmptyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ConfirmationResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GenerateConfirmation(context.Background(), testBooking(), testSettings())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGenerateConfirmationWithFallback_ServiceDown(t *testing.T) {
	// Недоступный сервис не возвращает ошибку, а деградирует до fallback
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, nopLogger{})

	message := client.GenerateConfirmationWithFallback(context.Background(), testBooking(), testSettings())
	assert.Equal(t, "Reserva confirmada! Tolerância de 10 min.", message)
}

func TestGenerateConfirmationWithFallback_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ConfirmationResponse{Message: "Até já!"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	message := client.GenerateConfirmationWithFallback(context.Background(), testBooking(), testSettings())
	assert.Equal(t, "Até já!", message)
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, "Reserva confirmada! Tolerância de 10 min.", FallbackMessage(testSettings()))
	assert.Equal(t, "Reserva confirmada! Tolerância de 0 min.", FallbackMessage(&domain.Settings{}))
}
