package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	createBooking "github.com/williamfinanuber/lariagendamentos/internal/usecase/create_booking"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{
	"date": "2024-06-10",
	"startTime": "9:00",
	"clientName": "Ana Souza",
	"clientContact": "+55 11 99999-0000",
	"procedureId": "lash-lifting",
	"procedureName": "Lash lifting"
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 7, 16, 0, 0, 0, time.UTC)

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Date.Equal(date) && req.StartTime == types.TimeString("09:00") && req.Notes == nil
	})).Return(&createBooking.Response{
		ID:            "b-1",
		Date:          date,
		StartTime:     "09:00",
		ClientName:    "Ana Souza",
		ClientContact: "+55 11 99999-0000",
		ProcedureID:   "lash-lifting",
		ProcedureName: "Lash lifting",
		Status:        "pending",
		CreatedAt:     created,
		UpdatedAt:     created,
	}, nil)

	rec := post(NewHandler(uc, logger.NewNop()), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, "09:00", body.Time)
	assert.Equal(t, "pending", body.Status)
	assert.False(t, body.ReminderSent)
	uc.AssertExpectations(t)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"date":`},
		{"missing client", `{"date":"2024-06-10","startTime":"09:00","clientContact":"x","procedureId":"p","procedureName":"P"}`},
		{"bad date", strings.Replace(validBody, "2024-06-10", "10/06/2024", 1)},
		{"bad time", strings.Replace(validBody, "9:00", "9h", 1)},
		{"long notes", strings.Replace(validBody, `"Lash lifting"`, `"Lash lifting","notes":"`+strings.Repeat("x", 501)+`"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)

			rec := post(NewHandler(uc, logger.NewNop()), tt.body)

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
		{"slot conflict", &domain.SlotConflictError{Date: "2024-06-10", Time: "09:00", ConflictingBookingID: "b-0"}, http.StatusConflict},
		{"day closed", createBooking.ErrDayClosed, http.StatusBadRequest},
		{"past date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"not a slot", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: clientName is required", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: db down", createBooking.ErrInternal), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, logger.NewNop()), validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
