package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса генерации текста подтверждений
// Сервис пишет клиенту тёплое сообщение о подтверждении брони;
// его недоступность никогда не блокирует само бронирование
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GenerateConfirmation запрашивает текст подтверждения бронирования
func (c *Client) GenerateConfirmation(ctx context.Context, booking *domain.Booking, settings *domain.Settings) (string, error) {
	url := fmt.Sprintf("%s/v1/confirmations", c.baseURL)

	payload := ConfirmationRequest{
		RestaurantName:   settings.RestaurantName,
		CustomerName:     booking.CustomerName,
		Date:             booking.Date.Format(domain.DateFormat),
		StartTime:        booking.StartTime.String(),
		PartySize:        booking.PartySize,
		ToleranceMinutes: settings.ToleranceMinutes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var confirmation ConfirmationResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if confirmation.Message == "" {
		return "", fmt.Errorf("%w: empty message", ErrInvalidResponse)
	}

	return confirmation.Message, nil
}

// GenerateConfirmationWithFallback запрашивает текст подтверждения
// с graceful degradation: при любой ошибке сервиса возвращает
// детерминированный fallback-текст и никогда не возвращает ошибку
func (c *Client) GenerateConfirmationWithFallback(ctx context.Context, booking *domain.Booking, settings *domain.Settings) string {
	message, err := c.GenerateConfirmation(ctx, booking, settings)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("TextGen unavailable, applying graceful degradation for booking id=%s: %v", booking.ID, err)
		return FallbackMessage(settings)
	}

	c.log.Info("Successfully generated confirmation for booking id=%s", booking.ID)
	return message
}

// FallbackMessage детерминированный текст подтверждения, используемый
// при недоступности сервиса генерации
func FallbackMessage(settings *domain.Settings) string {
	return fmt.Sprintf("Reserva confirmada! Tolerância de %d min.", settings.ToleranceMinutes)
}
