package create_booking

import "errors"

var (
	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	// Отличается от ErrNoTableAvailable, чтобы вызывающая сторона могла
	// показать "закрыто", а не "всё занято"
	ErrRestaurantClosed = errors.New("create_booking: restaurant is closed on this date")

	// ErrNoTableAvailable возвращается, когда нет стола нужной вместимости
	// или все подходящие столы заняты. Это штатный исход, а не сбой:
	// клиенту предлагают другую дату, время или размер компании
	ErrNoTableAvailable = errors.New("create_booking: no table available for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
