package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек ресторана
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TextGenClient интерфейс клиента сервиса генерации текста подтверждений
type TextGenClient interface {
	GenerateConfirmationWithFallback(ctx context.Context, booking *domain.Booking, settings *domain.Settings) string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
