package override

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

var overrideColumns = []string{"override_date", "blocked_times", "updated_at"}

func TestRepository_GetByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT override_date, blocked_times, updated_at FROM date_overrides WHERE override_date = \$1`).
		WithArgs("2024-06-10").
		WillReturnRows(sqlmock.NewRows(overrideColumns).AddRow(day, "{18:00,10:00}", day))

	override, err := NewRepository(db).GetByDate(context.Background(), day)
	require.NoError(t, err)

	// 18:00 is kept even if it is not a base slot anymore
	assert.Equal(t, []types.TimeString{"10:00", "18:00"}, override.BlockedTimes)
	assert.True(t, domain.SameDate(day, override.Date))
}

func TestRepository_GetByDate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM date_overrides`).
		WillReturnRows(sqlmock.NewRows(overrideColumns))

	_, err = NewRepository(db).GetByDate(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestRepository_GetRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM date_overrides WHERE override_date >= \$1 AND override_date <= \$2 ORDER BY override_date ASC`).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows(overrideColumns).
			AddRow(from, "{}", from).
			AddRow(to, "{09:00}", to))

	overrides, err := NewRepository(db).GetRange(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, overrides, 2)
	assert.True(t, overrides[0].IsEmpty())
	assert.Equal(t, []types.TimeString{"09:00"}, overrides[1].BlockedTimes)
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	saved := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO date_overrides .* ON CONFLICT \(override_date\) DO UPDATE SET blocked_times = EXCLUDED.blocked_times`).
		WithArgs("2024-06-10", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(saved))

	override, err := NewRepository(db).Upsert(context.Background(), &domain.DateOverride{
		Date:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		BlockedTimes: []types.TimeString{"10:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, saved, override.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
