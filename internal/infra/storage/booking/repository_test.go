package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
	"github.com/williamfinanuber/lariagendamentos/pkg/ptr"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	bookingDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1$`).
		WithArgs("b1").
		WillReturnRows(bookingRows().AddRow(
			"b1", bookingDate, "14:00:00", "Ana", "+55 11 99999-0000", "p1", "Lash lifting",
			nil, "confirmed", false, false, nil, nil, created, created,
		))

	booking, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, "14:00", booking.Time.String())
	assert.Nil(t, booking.Notes)
	assert.Equal(t, created, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings`).
		WithArgs("missing").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByFilter_LocksSingleDateInTx(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	filter := domain.BookingFilter{
		StartDate: &day,
		EndDate:   &day,
		Statuses:  domain.ActiveStatuses,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE booking_date >= \$1 AND booking_date <= \$2 AND status IN \(\$3,\$4,\$5\) ORDER BY start_time ASC FOR UPDATE`).
		WithArgs("2024-06-10", "2024-06-10", "pending", "confirmed", "completed").
		WillReturnRows(bookingRows())
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	bookings, err := repo.GetByFilter(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFilter_ReminderFlags(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE status IN \(\$1\) AND maintenance_reminder_sent = \$2 ORDER BY booking_date ASC, start_time ASC$`).
		WithArgs("completed", false).
		WillReturnRows(bookingRows())

	_, err := repo.GetByFilter(context.Background(), domain.BookingFilter{
		Statuses:                []domain.BookingStatus{domain.StatusCompleted},
		MaintenanceReminderSent: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: activeSlotConstraint})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:     "b1",
		Date:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:   "14:00",
		Status: domain.StatusPending,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_Save_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE bookings SET .* WHERE id = \$14`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &domain.Booking{ID: "b1", Time: "14:00", Status: domain.StatusCancelled})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
