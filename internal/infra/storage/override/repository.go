package override

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

const tableName = "date_overrides"

// Repository репозиторий блокировок слотов на конкретные даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает переопределение на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("override_date", "blocked_times", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"override_date": domain.FormatDate(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %w", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %w", ErrScanRow, err)
	}

	return override, nil
}

// GetRange получает переопределения за период включительно, по возрастанию даты
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("override_date", "blocked_times", "updated_at").
		From(tableName).
		Where(squirrel.GtOrEq{"override_date": domain.FormatDate(from)}).
		Where(squirrel.LtOrEq{"override_date": domain.FormatDate(to)}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %w", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %w", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert сохраняет список заблокированных времен на дату целиком
// Пустой список сохраняется как есть и эквивалентен отсутствию переопределения
func (r *Repository) Upsert(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("override_date", "blocked_times", "updated_at").
		Values(domain.FormatDate(override.Date), pq.Array(types.StringsOf(override.BlockedTimes)), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (override_date) DO UPDATE SET blocked_times = EXCLUDED.blocked_times, updated_at = EXCLUDED.updated_at RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %w", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	override.UpdatedAt = updatedAt.Time

	return override, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOverride блокировки в базе могут не совпадать с текущими слотами, они сохраняются как есть
func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var override domain.DateOverride
	var blocked []string
	var updatedAt sql.NullTime

	if err := row.Scan(&override.Date, pq.Array(&blocked), &updatedAt); err != nil {
		return nil, err
	}

	times, err := types.ParseTimeStrings(blocked)
	if err != nil {
		return nil, err
	}

	override.BlockedTimes = types.UniqueSorted(times)
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}
