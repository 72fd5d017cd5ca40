package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
	"github.com/williamfinanuber/lariagendamentos/pkg/ptr"
	"github.com/williamfinanuber/lariagendamentos/pkg/txmanager"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockPolicyLoader struct {
	mock.Mock
}

func (m *MockPolicyLoader) LoadPolicy(ctx context.Context) (*domain.WeeklyPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyPolicy), args.Error(1)
}

func (m *MockPolicyLoader) GetOverride(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DateOverride), args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObserveBookingCreated(result string) {
	m.Called(result)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var (
	today  = time.Date(2024, 6, 7, 16, 0, 0, 0, time.UTC) // пятница
	monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo    *MockBookingRepository
	loader  *MockPolicyLoader
	metrics *MockMetrics
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(MockBookingRepository),
		loader:  new(MockPolicyLoader),
		metrics: new(MockMetrics),
	}
	f.uc = NewUseCase(f.repo, f.loader, passthroughTx{}, f.metrics, time.UTC, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: today}

	p := domain.NewDefaultPolicy(true, false, []types.TimeString{"09:00", "10:00", "11:00"})
	f.loader.On("LoadPolicy", mock.Anything).Return(&p, nil).Maybe()
	return f
}

func validRequest() *Request {
	return &Request{
		Date:          monday,
		StartTime:     "14:00",
		ClientName:    "  Ana Souza ",
		ClientContact: "+55 11 99999-0000",
		ProcedureID:   "lash-lifting",
		ProcedureName: "Lash lifting",
		Notes:         ptr.Ptr("primeira vez"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "10:00"

	f.loader.On("GetOverride", mock.Anything, monday).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.MatchedBy(func(filter domain.BookingFilter) bool {
		return filter.SingleDate()
	})).Return([]*domain.Booking{
		{ID: "old", Date: monday, Time: "10:00", Status: domain.StatusCancelled},
		{ID: "other", Date: monday, Time: "09:00", Status: domain.StatusConfirmed},
	}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID != "" && b.Status == domain.StatusPending && b.Time == "10:00" &&
			b.ClientName == "Ana Souza" && !b.ReminderSent && !b.MaintenanceReminderSent
	})).Return(&domain.Booking{
		ID:        "b-new",
		Date:      monday,
		Time:      "10:00",
		Status:    domain.StatusPending,
		CreatedAt: today,
		UpdatedAt: today,
	}, nil)
	f.metrics.On("ObserveBookingCreated", "ok").Return()

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "b-new", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, today, resp.CreatedAt)
	f.repo.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "09:00"

	f.loader.On("GetOverride", mock.Anything, monday).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{ID: "holder", Date: monday, Time: "09:00", Status: domain.StatusPending},
	}, nil)
	f.metrics.On("ObserveBookingCreated", "conflict").Return()

	_, err := f.uc.Execute(context.Background(), req)

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "holder", conflict.ConflictingBookingID)
	assert.Equal(t, "2024-06-10", conflict.Date)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ConcurrentInsert(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "11:00"

	f.loader.On("GetOverride", mock.Anything, monday).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotTaken)
	f.metrics.On("ObserveBookingCreated", "conflict").Return()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestUseCase_Execute_BlockedTime(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "10:00"

	f.loader.On("GetOverride", mock.Anything, monday).Return(&domain.DateOverride{
		Date:         monday,
		BlockedTimes: []types.TimeString{"10:00"},
	}, nil)
	f.metrics.On("ObserveBookingCreated", "rejected").Return()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	f.repo.AssertNotCalled(t, "GetByFilter", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{"missing client", func(r *Request) { r.ClientName = " " }, ErrInvalidInput},
		{"missing contact", func(r *Request) { r.ClientContact = "" }, ErrInvalidInput},
		{"missing procedure", func(r *Request) { r.ProcedureID = "" }, ErrInvalidInput},
		{"bad time", func(r *Request) { r.StartTime = "25:00" }, ErrInvalidInput},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"past date", func(r *Request) { r.Date = today.AddDate(0, 0, -1) }, ErrInvalidDate},
		{"closed sunday", func(r *Request) { r.Date = sunday; r.StartTime = "09:00" }, ErrDayClosed},
		{"not a base slot", func(r *Request) { r.StartTime = "14:00" }, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.loader.On("GetOverride", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
			f.metrics.On("ObserveBookingCreated", "rejected").Return()

			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_TodayAllowed(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	req.StartTime = "09:00"

	f.loader.On("GetOverride", mock.Anything, mock.Anything).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: "b1", Status: domain.StatusPending}, nil)
	f.metrics.On("ObserveBookingCreated", "ok").Return()

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "09:00"

	f.loader.On("GetOverride", mock.Anything, monday).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	f.metrics.On("ObserveBookingCreated", "error").Return()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_SerializationFailureStaysInChain(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "09:00"

	pqErr := &pq.Error{Code: "40001"}
	f.loader.On("GetOverride", mock.Anything, monday).Return(nil, nil)
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: GetByFilter - execute query: %w", bookingRepo.ErrExecQuery, pqErr))
	f.metrics.On("ObserveBookingCreated", "error").Return()

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, bookingRepo.ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err))
}
