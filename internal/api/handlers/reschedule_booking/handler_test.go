package reschedule_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	rescheduleBooking "github.com/williamfinanuber/lariagendamentos/internal/usecase/reschedule_booking"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *rescheduleBooking.Request) (*rescheduleBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rescheduleBooking.Response), args.Error(1)
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+url.PathEscape(id)+"/schedule", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	date := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &rescheduleBooking.Request{
		BookingID: "b-1",
		Date:      date,
		StartTime: "11:00",
	}).Return(&rescheduleBooking.Response{
		Booking: &domain.Booking{ID: "b-1", Date: date, Time: "11:00", Status: domain.StatusConfirmed},
		Moved:   true,
	}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "b-1", `{"date":"2024-06-11","startTime":"11:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body RescheduleBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Moved)
	assert.Equal(t, "2024-06-11", body.Booking.Date)
	assert.Equal(t, "11:00", body.Booking.Time)
	assert.Equal(t, "confirmed", body.Booking.Status)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ``},
		{"missing time", `{"date":"2024-06-11"}`},
		{"bad date", `{"date":"2024-02-30","startTime":"11:00"}`},
		{"bad time", `{"date":"2024-06-11","startTime":"11:60"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)

			rec := serve(NewHandler(uc, logger.NewNop()), "b-1", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", rescheduleBooking.ErrBookingNotFound, http.StatusNotFound},
		{"completed", rescheduleBooking.ErrNotReschedulable, http.StatusConflict},
		{"conflict", &domain.SlotConflictError{Date: "2024-06-11", Time: "11:00", ConflictingBookingID: "b-9"}, http.StatusConflict},
		{"closed", rescheduleBooking.ErrDayClosed, http.StatusBadRequest},
		{"past", rescheduleBooking.ErrInvalidDate, http.StatusBadRequest},
		{"not a slot", rescheduleBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: db down", rescheduleBooking.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.NewNop()), "b-1", `{"date":"2024-06-11","startTime":"11:00"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
