package settings

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует запрос на обновление настроек
func validateRequest(req *models.UpdateSettingsRequest) error {
	if strings.TrimSpace(req.RestaurantName) == "" {
		return fmt.Errorf("%w: restaurantName is required", ErrInvalidInput)
	}

	if req.MealDurationMinutes < domain.MinMealDurationMinutes || req.MealDurationMinutes > domain.MaxMealDurationMinutes {
		return fmt.Errorf("%w: mealDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinMealDurationMinutes, domain.MaxMealDurationMinutes)
	}

	if req.ToleranceMinutes < domain.MinToleranceMinutes || req.ToleranceMinutes > domain.MaxToleranceMinutes {
		return fmt.Errorf("%w: toleranceMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinToleranceMinutes, domain.MaxToleranceMinutes)
	}

	if err := validateTables(req.Tables); err != nil {
		return err
	}

	return validateHours(req.Hours)
}

// validateTables проверяет список столов: непустой, ID уникальны, вместимость положительна
func validateTables(tables []models.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("%w: at least one table is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(tables))
	for i, t := range tables {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("%w: table[%d] id is required", ErrInvalidInput, i)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: duplicate table id %q", ErrInvalidInput, t.ID)
		}
		seen[t.ID] = struct{}{}

		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: table %q name is required", ErrInvalidInput, t.ID)
		}
		if t.Seats <= 0 {
			return fmt.Errorf("%w: table %q seats must be positive", ErrInvalidInput, t.ID)
		}
	}

	return nil
}

// validateHours проверяет расписание: допустимые дни недели и корректные интервалы
func validateHours(hours map[int]models.DaySchedule) error {
	if len(hours) == 0 {
		return fmt.Errorf("%w: hours are required", ErrInvalidInput)
	}

	for day, schedule := range hours {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: invalid day of week %d", ErrInvalidInput, day)
		}

		if err := validateTimeRange(day, "lunch", schedule.Lunch); err != nil {
			return err
		}
		if err := validateTimeRange(day, "dinner", schedule.Dinner); err != nil {
			return err
		}
	}

	return nil
}

// validateTimeRange проверяет один рабочий интервал
// Закрытые интервалы не проверяются: их границы игнорируются
func validateTimeRange(day int, period string, tr models.TimeRange) error {
	if !tr.IsOpen {
		return nil
	}

	start := types.TimeString(tr.Start)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: day %d %s start: %v", ErrInvalidInput, day, period, err)
	}

	end := types.TimeString(tr.End)
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: day %d %s end: %v", ErrInvalidInput, day, period, err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("%w: day %d %s start must be before end", ErrInvalidInput, day, period)
	}

	return nil
}
