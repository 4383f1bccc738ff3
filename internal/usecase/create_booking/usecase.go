package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case создания бронирования с назначением стола
type UseCase struct {
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	textGenClient TextGenClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	textGenClient TextGenClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		textGenClient: textGenClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Выбор стола и создание записи идут в одной сериализуемой транзакции:
// слот, показанный клиенту на этапе выбора, мог быть занят другим
// бронированием, поэтому назначение стола здесь авторитетно, а не
// предсказание движка доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, date=%s, time=%s, party_size=%d",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки ресторана
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Проверяем, что ресторан открыт в эту дату
	if !domain.IsDateOpen(req.Date, settings) {
		uc.logger.Warn("CreateBooking: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrRestaurantClosed
	}

	// 4. Переводим время начала в минуты
	slotStart, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// Переменные для хранения результата
	var result *domain.Booking
	var table *domain.Table

	// 5. Назначаем стол и создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем бронирования этой даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, domain.BookingsFilter{Date: ptr.Ptr(req.Date)})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Выбираем стол: минимально достаточный, первый свободный
		table = domain.FindAvailableTable(settings.Tables, bookings, slotStart, settings.MealDurationMinutes, req.PartySize)
		if table == nil {
			uc.logger.Warn("CreateBooking: no table available for date=%s, time=%s, party_size=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)
			return ErrNoTableAvailable
		}

		uc.logger.Info("CreateBooking: assigned table id=%s (%d seats) for party_size=%d",
			table.ID, table.Seats, req.PartySize)

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			StartTime:     req.StartTime,
			PartySize:     req.PartySize,
			TableID:       table.ID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, table=%s", result.ID, result.TableID)

	// 6. Запрашиваем текст подтверждения (с graceful degradation - сбой
	// внешнего сервиса никогда не отменяет уже созданное бронирование)
	confirmation := uc.textGenClient.GenerateConfirmationWithFallback(ctx, result, settings)

	// 7. Собираем ссылку на событие календаря (тоже не блокирует бронирование)
	calendarURL, err := calendar.BuildEventURL(result, settings)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to build calendar URL for booking id=%s: %v", result.ID, err)
		calendarURL = ""
	}

	return &Response{
		ID:                  result.ID,
		CustomerName:        result.CustomerName,
		CustomerEmail:       result.CustomerEmail,
		CustomerPhone:       result.CustomerPhone,
		Date:                result.Date,
		StartTime:           result.StartTime,
		PartySize:           result.PartySize,
		TableID:             result.TableID,
		TableName:           table.Name,
		CreatedAt:           result.CreatedAt,
		ConfirmationMessage: confirmation,
		CalendarURL:         calendarURL,
	}, nil
}
