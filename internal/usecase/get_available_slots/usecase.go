package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистая функция от снапшота настроек и бронирований: никаких побочных
// эффектов, результат детерминирован для фиксированного момента времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, party_size=%d",
		req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки ресторана
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Если ресторан закрыт в эту дату - пустой список слотов
	// DayOpen=false позволяет вызывающей стороне показать "закрыто",
	// а не "всё занято"
	if !domain.IsDateOpen(req.Date, settings) {
		uc.logger.Info("GetAvailableSlots: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			PartySize: req.PartySize,
			DayOpen:   false,
			Slots:     []Slot{},
		}, nil
	}

	// 5. Получаем бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.BookingsFilter{Date: ptr.Ptr(req.Date)})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты обоих периодов
	slots, err := generateTimeSlots(settings, req.Date, req.PartySize, bookings, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, party_size=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.PartySize)

	return &Response{
		Date:      req.Date,
		PartySize: req.PartySize,
		DayOpen:   true,
		Slots:     slots,
	}, nil
}
