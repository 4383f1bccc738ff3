package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "12:30")
	PartySize     int              // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string           // ID созданного бронирования
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	PartySize     int              // Количество гостей
	TableID       string           // ID назначенного стола
	TableName     string           // Название назначенного стола
	CreatedAt     time.Time        // Время создания

	// ConfirmationMessage текст подтверждения (от внешнего сервиса или fallback)
	ConfirmationMessage string

	// CalendarURL ссылка на создание события во внешнем календаре
	// Пустая строка, если ссылку собрать не удалось
	CalendarURL string
}
