package claim_reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockRemindersUseCase struct {
	mock.Mock
}

func (m *MockRemindersUseCase) Claim(ctx context.Context, req *reminders.ClaimRequest) (*reminders.ClaimResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reminders.ClaimResponse), args.Error(1)
}

func serve(h *Handler, id, kind string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+url.PathEscape(id)+"/reminders/"+url.PathEscape(kind)+"/claim", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id, "kind": kind})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func booking() *domain.Booking {
	return &domain.Booking{
		ID:     "b-1",
		Date:   time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Time:   "09:00",
		Status: domain.StatusConfirmed,
	}
}

func TestHandler_Handle(t *testing.T) {
	uc := new(MockRemindersUseCase)
	uc.On("Claim", mock.Anything, &reminders.ClaimRequest{BookingID: "b-1", Kind: domain.ReminderDayBefore}).
		Return(&reminders.ClaimResponse{
			Booking: booking(),
			Token:   "tok",
			Message: &whatsapp.Reminder{Phone: "5511999990000", Message: "Oi", Link: "https://wa.me/5511999990000?text=Oi"},
		}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "b-1", "day-before")

	require.Equal(t, http.StatusOK, rec.Code)

	var body ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.AlreadySent)
	assert.Equal(t, "tok", body.Token)
	require.NotNil(t, body.Message)
	assert.Equal(t, "https://wa.me/5511999990000?text=Oi", body.Message.Link)
	assert.Equal(t, "b-1", body.Booking.ID)
}

func TestHandler_Handle_AlreadySent(t *testing.T) {
	b := booking()
	b.ReminderSent = true

	uc := new(MockRemindersUseCase)
	uc.On("Claim", mock.Anything, mock.Anything).Return(&reminders.ClaimResponse{Booking: b, AlreadySent: true}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "b-1", "day-before")

	require.Equal(t, http.StatusOK, rec.Code)

	var body ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.AlreadySent)
	assert.Empty(t, body.Token)
	assert.Nil(t, body.Message)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid kind", fmt.Errorf("%w: unknown reminder kind", reminders.ErrInvalidInput), http.StatusBadRequest},
		{"not found", reminders.ErrBookingNotFound, http.StatusNotFound},
		{"cancelled", fmt.Errorf("%w: booking b-1 is cancelled", reminders.ErrNotEligible), http.StatusConflict},
		{"not completed", fmt.Errorf("%w: booking b-1 is confirmed", domain.ErrNotCompleted), http.StatusConflict},
		{"claim held", reminders.ErrClaimHeld, http.StatusConflict},
		{"no phone", fmt.Errorf("%w: booking b-1", reminders.ErrInvalidContact), http.StatusUnprocessableEntity},
		{"internal", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockRemindersUseCase)
			uc.On("Claim", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.NewNop()), "b-1", "maintenance")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
