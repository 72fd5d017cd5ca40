package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	remindersUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockWorklistSource struct {
	mock.Mock
}

func (m *MockWorklistSource) DayBefore(ctx context.Context, today time.Time) (*remindersUC.Worklist, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remindersUC.Worklist), args.Error(1)
}

func (m *MockWorklistSource) Maintenance(ctx context.Context) (*remindersUC.Worklist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remindersUC.Worklist), args.Error(1)
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(new(MockWorklistSource), "every morning", time.UTC, logger.NewNop())
	assert.Error(t, err)
}

func TestWorker_Refresh(t *testing.T) {
	source := new(MockWorklistSource)
	source.On("DayBefore", mock.Anything, time.Time{}).Return(&remindersUC.Worklist{
		Kind:  domain.ReminderDayBefore,
		Today: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Items: []remindersUC.WorklistItem{
			{Booking: &domain.Booking{ID: "b1", Time: "09:00", ClientName: "Ana"}},
		},
	}, nil)
	source.On("Maintenance", mock.Anything).Return(nil, errors.New("db down"))

	w, err := New(source, "0 8 * * *", time.UTC, logger.NewNop())
	require.NoError(t, err)

	w.Refresh(context.Background())
	source.AssertExpectations(t)
}

func TestDigest(t *testing.T) {
	list := &remindersUC.Worklist{
		Today: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Items: []remindersUC.WorklistItem{
			{Booking: &domain.Booking{Time: "09:00", ClientName: "Ana"}},
			{Booking: &domain.Booking{Time: "14:00", ClientName: "Bia"}},
		},
	}

	assert.Equal(t, " (2024-06-11): 09:00 Ana, 14:00 Bia", digest(list))
	assert.Empty(t, digest(&remindersUC.Worklist{}))
}
