package bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// Service сервис для чтения и выгрузки бронирований
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	settings := s.settingsSnapshot(ctx)

	resp := models.FromDomainBooking(booking, settings)
	return &resp, nil
}

// GetBookings получает список бронирований, опционально за одну дату
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBookings: fetching bookings, date=%v", req.Date)

	bookings, err := s.bookingRepo.GetByDate(ctx, domain.BookingsFilter{Date: req.Date})
	if err != nil {
		s.logger.Error("GetBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookings - repository error: %v", ErrInternal, err)
	}

	settings := s.settingsSnapshot(ctx)

	result := make([]models.BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = models.FromDomainBooking(b, settings)
	}

	s.logger.Info("GetBookings: fetched %d bookings", len(result))
	return &models.BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}, nil
}

// ExportCSV выгружает все бронирования в CSV (бэкап для администратора)
// Колонки повторяют формат ручного бэкапа из админ-панели
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	s.logger.Info("ExportCSV: exporting all bookings")

	bookings, err := s.bookingRepo.GetByDate(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Nome", "Email", "Telefone", "Data", "Hora", "Pessoas", "Mesa ID"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		record := []string{
			b.ID,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.Date.Format(domain.DateFormat),
			b.StartTime.String(),
			strconv.Itoa(b.PartySize),
			b.TableID,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return buf.Bytes(), nil
}

// settingsSnapshot читает настройки для обогащения ответов названиями столов
// Ошибка не фатальна: ответ просто останется без названий
func (s *Service) settingsSnapshot(ctx context.Context) *domain.Settings {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("settingsSnapshot: failed to get settings: %v", err)
		return nil
	}
	return settings
}
