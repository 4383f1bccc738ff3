package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// settingsRowID настройки хранятся единственной строкой
const settingsRowID = 1

// Repository репозиторий конфигурации ресторана
// Настройки разложены по трём таблицам: singleton-строка settings,
// столы в restaurant_tables и расписание в day_schedules
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает полную конфигурацию ресторана
// Возвращает ErrSettingsNotFound, если singleton-строка еще не создана
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_name",
		"meal_duration_minutes",
		"tolerance_minutes",
		"calendar_id",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.Settings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.RestaurantName,
		&result.MealDurationMinutes,
		&result.ToleranceMinutes,
		&result.CalendarID,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	result.UpdatedAt = updatedAt.Time

	result.Tables, err = r.getTables(ctx, executor)
	if err != nil {
		return nil, err
	}

	result.Hours, err = r.getHours(ctx, executor)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Replace полностью заменяет конфигурацию ресторана
// Должен вызываться внутри транзакции, чтобы читатели не увидели
// настройки с половиной столов
func (r *Repository) Replace(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "restaurant_name", "meal_duration_minutes", "tolerance_minutes", "calendar_id").
		Values(settingsRowID, s.RestaurantName, s.MealDurationMinutes, s.ToleranceMinutes, s.CalendarID).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			meal_duration_minutes = EXCLUDED.meal_duration_minutes,
			tolerance_minutes = EXCLUDED.tolerance_minutes,
			calendar_id = EXCLUDED.calendar_id,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
	}
	s.UpdatedAt = updatedAt.Time

	if err := r.replaceTables(ctx, executor, s.Tables); err != nil {
		return nil, err
	}

	if err := r.replaceHours(ctx, executor, s.Hours); err != nil {
		return nil, err
	}

	return s, nil
}

// getTables читает список столов в порядке позиции
func (r *Repository) getTables(ctx context.Context, executor DBExecutor) ([]domain.Table, error) {
	query, args, err := psqlbuilder.Select("id", "name", "seats").
		From("restaurant_tables").
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getTables - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getTables - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Name, &t.Seats); err != nil {
			return nil, fmt.Errorf("%w: getTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// getHours читает расписание по дням недели
func (r *Repository) getHours(ctx context.Context, executor DBExecutor) (map[int]domain.DaySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"lunch_open", "lunch_start", "lunch_end",
		"dinner_open", "dinner_start", "dinner_end",
	).
		From("day_schedules").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make(map[int]domain.DaySchedule)
	for rows.Next() {
		var day int
		var schedule domain.DaySchedule

		err := rows.Scan(
			&day,
			&schedule.Lunch.IsOpen, &schedule.Lunch.Start, &schedule.Lunch.End,
			&schedule.Dinner.IsOpen, &schedule.Dinner.Start, &schedule.Dinner.End,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getHours - scan row: %v", ErrScanRow, err)
		}

		hours[day] = schedule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// replaceTables заменяет список столов
func (r *Repository) replaceTables(ctx context.Context, executor DBExecutor, tables []domain.Table) error {
	query, args, err := psqlbuilder.Delete("restaurant_tables").ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceTables - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceTables - execute delete: %v", ErrExecQuery, err)
	}

	if len(tables) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("restaurant_tables").
		Columns("id", "name", "seats", "position")
	for i, t := range tables {
		insertBuilder = insertBuilder.Values(t.ID, t.Name, t.Seats, i)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceTables - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceTables - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// replaceHours заменяет расписание по дням недели
func (r *Repository) replaceHours(ctx context.Context, executor DBExecutor, hours map[int]domain.DaySchedule) error {
	query, args, err := psqlbuilder.Delete("day_schedules").ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHours - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("day_schedules").
		Columns(
			"day_of_week",
			"lunch_open", "lunch_start", "lunch_end",
			"dinner_open", "dinner_start", "dinner_end",
		)
	for day := 0; day <= 6; day++ {
		schedule, ok := hours[day]
		if !ok {
			// День без записи считается полностью закрытым и не хранится
			continue
		}
		insertBuilder = insertBuilder.Values(
			day,
			schedule.Lunch.IsOpen, schedule.Lunch.Start, schedule.Lunch.End,
			schedule.Dinner.IsOpen, schedule.Dinner.Start, schedule.Dinner.End,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceHours - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
