package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
	"github.com/williamfinanuber/lariagendamentos/pkg/psqlbuilder"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

const (
	policyTable = "weekly_policy"
	slotsTable  = "weekday_slots"

	// политика одна на студию
	policyRowID = 1
)

// Repository репозиторий недельной политики и базовых слотов по дням недели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает флаги выходных дней
// BaseSlots не заполняются, см. GetAllSlots
func (r *Repository) Get(ctx context.Context) (*domain.WeeklyPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("saturday_open", "sunday_open", "updated_at").
		From(policyTable).
		Where(squirrel.Eq{"id": policyRowID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var policy domain.WeeklyPolicy
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.SaturdayOpen,
		&policy.SundayOpen,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan policy: %w", ErrScanRow, err)
	}

	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// SetWeekendFlag сохраняет флаг одного выходного дня
// Если строки еще нет, она создается со значениями из policy.
// При конфликте обновляется только колонка переданного дня, второй флаг не трогается.
func (r *Repository) SetWeekendFlag(ctx context.Context, policy domain.WeeklyPolicy, day time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var column string
	switch day {
	case time.Saturday:
		column = "saturday_open"
	case time.Sunday:
		column = "sunday_open"
	default:
		return fmt.Errorf("%w: SetWeekendFlag - %s is not a weekend day", ErrInvalidWeekday, day)
	}

	query, args, err := psqlbuilder.Insert(policyTable).
		Columns("id", "saturday_open", "sunday_open", "updated_at").
		Values(policyRowID, policy.SaturdayOpen, policy.SundayOpen, squirrel.Expr("NOW()")).
		Suffix(fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = EXCLUDED.updated_at", column, column)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetWeekendFlag - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetWeekendFlag - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetAllSlots получает сохраненные базовые слоты по дням недели
// Дни без строки в таблице отсутствуют в результате (используются значения по умолчанию),
// пустой массив означает, что у дня нет слотов.
func (r *Repository) GetAllSlots(ctx context.Context) (map[time.Weekday][]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_times").
		From(slotsTable).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllSlots - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllSlots - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[time.Weekday][]types.TimeString)
	for rows.Next() {
		var weekday int
		var startTimes []string

		if err := rows.Scan(&weekday, pq.Array(&startTimes)); err != nil {
			return nil, fmt.Errorf("%w: GetAllSlots - scan row: %w", ErrScanRow, err)
		}

		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			return nil, fmt.Errorf("%w: GetAllSlots - weekday %d", ErrInvalidWeekday, weekday)
		}

		slots, err := types.ParseTimeStrings(startTimes)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllSlots - weekday %d: %w", ErrInvalidStoredTime, weekday, err)
		}

		result[time.Weekday(weekday)] = types.UniqueSorted(slots)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllSlots - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceForWeekday заменяет базовые слоты дня недели целиком
func (r *Repository) ReplaceForWeekday(ctx context.Context, weekday time.Weekday, slots []types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if weekday < time.Sunday || weekday > time.Saturday {
		return fmt.Errorf("%w: ReplaceForWeekday - weekday %d", ErrInvalidWeekday, weekday)
	}

	query, args, err := psqlbuilder.Insert(slotsTable).
		Columns("weekday", "start_times", "updated_at").
		Values(int(weekday), pq.Array(types.StringsOf(slots)), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (weekday) DO UPDATE SET start_times = EXCLUDED.start_times, updated_at = EXCLUDED.updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForWeekday - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}
