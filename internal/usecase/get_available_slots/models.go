package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      time.Time // Дата для получения слотов (без времени)
	PartySize int       // Количество гостей
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	PartySize int       // Количество гостей
	DayOpen   bool      // false - ресторан закрыт в этот день (отличаем "закрыто" от "занято")
	Slots     []Slot    // Слоты обоих периодов, отсортированные по времени
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString  // Время начала слота (например, "12:15")
	Available bool              // Есть ли подходящий свободный стол
	Reason    domain.SlotReason // Причина недоступности (пустая, если слот доступен)
}
