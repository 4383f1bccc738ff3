package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "12:30"
	PartySize     int    `json:"partySize"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  string `json:"id"`
	CustomerName        string `json:"customerName"`
	CustomerEmail       string `json:"customerEmail,omitempty"`
	CustomerPhone       string `json:"customerPhone"`
	Date                string `json:"date"`
	StartTime           string `json:"startTime"`
	PartySize           int    `json:"partySize"`
	TableID             string `json:"tableId"`
	TableName           string `json:"tableName,omitempty"`
	ConfirmationMessage string `json:"confirmationMessage"`
	CalendarURL         string `json:"calendarUrl,omitempty"`
	CreatedAt           string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		PartySize:     r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                  resp.ID,
		CustomerName:        resp.CustomerName,
		CustomerEmail:       resp.CustomerEmail,
		CustomerPhone:       resp.CustomerPhone,
		Date:                resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		PartySize:           resp.PartySize,
		TableID:             resp.TableID,
		TableName:           resp.TableName,
		ConfirmationMessage: resp.ConfirmationMessage,
		CalendarURL:         resp.CalendarURL,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
