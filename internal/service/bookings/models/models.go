package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingResponse модель бронирования для ответа сервиса
type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CustomerPhone string    `json:"customerPhone"`
	Date          string    `json:"date"`      // YYYY-MM-DD
	StartTime     string    `json:"startTime"` // HH:MM
	PartySize     int       `json:"partySize"`
	TableID       string    `json:"tableId"`
	TableName     string    `json:"tableName,omitempty"` // Название стола, если стол еще существует в настройках
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetBookingsRequest запрос списка бронирований
type GetBookingsRequest struct {
	Date *time.Time // Фильтр по дате (опционально, если nil - все бронирования)
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
// settings может быть nil - тогда название стола остается пустым
func FromDomainBooking(b *domain.Booking, settings *domain.Settings) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		PartySize:     b.PartySize,
		TableID:       b.TableID,
		CreatedAt:     b.CreatedAt,
	}

	if settings != nil {
		if table := settings.TableByID(b.TableID); table != nil {
			resp.TableName = table.Name
		}
	}

	return resp
}
