package calendar

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	renderURL = "https://calendar.google.com/calendar/render"

	// dateTimeLayout собирает локальный момент начала брони из даты и времени
	dateTimeLayout = "2006-01-02T15:04"

	// basicUTCLayout basic-формат UTC таймстемпа без разделителей
	basicUTCLayout = "20060102T150405Z"
)

// ErrInvalidBooking возвращается, когда из бронирования нельзя собрать событие
var ErrInvalidBooking = errors.New("calendar: cannot build event from booking")

// BuildEventURL строит ссылку на создание события во внешнем календаре:
// заголовок "{partySize} {customerName}", локация - телефон клиента
// (fallback: название ресторана), описание с email клиента, интервал
// события - [start, start + mealDuration] в basic-формате UTC
//
// Ошибка билдера никогда не должна блокировать бронирование - вызывающий
// код деградирует до пустой ссылки
func BuildEventURL(booking *domain.Booking, settings *domain.Settings) (string, error) {
	localStart, err := time.ParseInLocation(
		dateTimeLayout,
		fmt.Sprintf("%sT%s", booking.Date.Format(domain.DateFormat), booking.StartTime.String()),
		time.Local,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	start := localStart.UTC()
	end := start.Add(time.Duration(settings.MealDurationMinutes) * time.Minute)

	location := booking.CustomerPhone
	if location == "" {
		location = settings.RestaurantName
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", fmt.Sprintf("%d %s", booking.PartySize, booking.CustomerName))
	params.Set("dates", fmt.Sprintf("%s/%s", start.Format(basicUTCLayout), end.Format(basicUTCLayout)))
	params.Set("details", fmt.Sprintf("Reserva confirmada.\nEmail: %s", booking.CustomerEmail))
	params.Set("location", location)

	if settings.CalendarID != "" {
		params.Set("add", settings.CalendarID)
	}

	return renderURL + "?" + params.Encode(), nil
}
