package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Table модель стола ресторана
type Table struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

// TimeRange рабочий интервал в пределах дня
type TimeRange struct {
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Lunch  TimeRange `json:"lunch"`
	Dinner TimeRange `json:"dinner"`
}

// SettingsResponse полная конфигурация ресторана
type SettingsResponse struct {
	RestaurantName      string              `json:"restaurantName"`
	MealDurationMinutes int                 `json:"mealDurationMinutes"`
	ToleranceMinutes    int                 `json:"toleranceMinutes"`
	CalendarID          string              `json:"calendarId,omitempty"`
	Tables              []Table             `json:"tables"`
	Hours               map[int]DaySchedule `json:"hours"` // Ключ: день недели 0 (воскресенье) - 6 (суббота)
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// UpdateSettingsRequest запрос на полную замену настроек
type UpdateSettingsRequest struct {
	RestaurantName      string              `json:"restaurantName"`
	MealDurationMinutes int                 `json:"mealDurationMinutes"`
	ToleranceMinutes    int                 `json:"toleranceMinutes"`
	CalendarID          string              `json:"calendarId,omitempty"`
	Tables              []Table             `json:"tables"`
	Hours               map[int]DaySchedule `json:"hours"`
}

// FromDomainSettings конвертирует доменные настройки в ответ сервиса
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	tables := make([]Table, len(s.Tables))
	for i, t := range s.Tables {
		tables[i] = Table{ID: t.ID, Name: t.Name, Seats: t.Seats}
	}

	hours := make(map[int]DaySchedule, len(s.Hours))
	for day, schedule := range s.Hours {
		hours[day] = DaySchedule{
			Lunch:  fromDomainRange(schedule.Lunch),
			Dinner: fromDomainRange(schedule.Dinner),
		}
	}

	return &SettingsResponse{
		RestaurantName:      s.RestaurantName,
		MealDurationMinutes: s.MealDurationMinutes,
		ToleranceMinutes:    s.ToleranceMinutes,
		CalendarID:          s.CalendarID,
		Tables:              tables,
		Hours:               hours,
		UpdatedAt:           s.UpdatedAt,
	}
}

// ToDomainSettings конвертирует запрос на обновление в доменные настройки
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.Settings {
	tables := make([]domain.Table, len(r.Tables))
	for i, t := range r.Tables {
		tables[i] = domain.Table{ID: t.ID, Name: t.Name, Seats: t.Seats}
	}

	hours := make(map[int]domain.DaySchedule, len(r.Hours))
	for day, schedule := range r.Hours {
		hours[day] = domain.DaySchedule{
			Lunch:  toDomainRange(schedule.Lunch),
			Dinner: toDomainRange(schedule.Dinner),
		}
	}

	return &domain.Settings{
		RestaurantName:      r.RestaurantName,
		MealDurationMinutes: r.MealDurationMinutes,
		ToleranceMinutes:    r.ToleranceMinutes,
		CalendarID:          r.CalendarID,
		Tables:              tables,
		Hours:               hours,
	}
}

func fromDomainRange(tr domain.TimeRange) TimeRange {
	return TimeRange{
		IsOpen: tr.IsOpen,
		Start:  tr.Start.String(),
		End:    tr.End.String(),
	}
}

func toDomainRange(tr TimeRange) domain.TimeRange {
	return domain.TimeRange{
		IsOpen: tr.IsOpen,
		Start:  types.TimeString(tr.Start),
		End:    types.TimeString(tr.End),
	}
}
