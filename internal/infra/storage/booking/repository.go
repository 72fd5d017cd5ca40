package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
	"github.com/williamfinanuber/lariagendamentos/pkg/psqlbuilder"
)

const (
	tableName = "bookings"

	// уникальный частичный индекс (booking_date, start_time) WHERE status <> 'cancelled'
	activeSlotConstraint = "bookings_active_slot_uniq"
	uniqueViolation      = "23505"
)

var columns = []string{
	"id",
	"booking_date",
	"start_time",
	"client_name",
	"client_contact",
	"procedure_id",
	"procedure_name",
	"notes",
	"status",
	"reminder_sent",
	"maintenance_reminder_sent",
	"completed_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"booking_date",
			"start_time",
			"client_name",
			"client_contact",
			"procedure_id",
			"procedure_name",
			"notes",
			"status",
			"reminder_sent",
			"maintenance_reminder_sent",
		).
		Values(
			booking.ID,
			domain.FormatDate(booking.Date),
			booking.Time,
			booking.ClientName,
			booking.ClientContact,
			booking.ProcedureID,
			booking.ProcedureName,
			booking.Notes,
			booking.Status,
			booking.ReminderSent,
			booking.MaintenanceReminderSent,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFilter получает бронирования с фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate)
// - Набору статусов (Statuses)
// - Флагам напоминаний (ReminderSent, MaintenanceReminderSent)
//
// Для одной даты сортировка по времени, иначе по дате и времени (ASC).
// Внутри транзакции запрос на одну дату блокирует строки (FOR UPDATE),
// чтобы проверка занятости слота и запись шли атомарно.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": domain.FormatDate(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": domain.FormatDate(*filter.EndDate)})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	if filter.ReminderSent != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reminder_sent": *filter.ReminderSent})
	}
	if filter.MaintenanceReminderSent != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"maintenance_reminder_sent": *filter.MaintenanceReminderSent})
	}

	if filter.SingleDate() {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date ASC", "start_time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.SingleDate() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Save сохраняет изменяемые поля бронирования
// Бронирования никогда не удаляются физически, отмена это смена статуса
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("booking_date", domain.FormatDate(booking.Date)).
		Set("start_time", booking.Time).
		Set("client_name", booking.ClientName).
		Set("client_contact", booking.ClientContact).
		Set("procedure_id", booking.ProcedureID).
		Set("procedure_name", booking.ProcedureName).
		Set("notes", booking.Notes).
		Set("status", booking.Status).
		Set("reminder_sent", booking.ReminderSent).
		Set("maintenance_reminder_sent", booking.MaintenanceReminderSent).
		Set("completed_at", booking.CompletedAt).
		Set("cancelled_at", booking.CancelledAt).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveSlotViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Save - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.Time,
		&booking.ClientName,
		&booking.ClientContact,
		&booking.ProcedureID,
		&booking.ProcedureName,
		&booking.Notes,
		&booking.Status,
		&booking.ReminderSent,
		&booking.MaintenanceReminderSent,
		&booking.CompletedAt,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && pqErr.Constraint == activeSlotConstraint
}
