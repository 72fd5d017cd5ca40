package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+url.PathEscape(id), nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		resp       *models.BookingResponse
		err        error
		wantStatus int
	}{
		{"found", "b-1", &models.BookingResponse{ID: "b-1", Status: "confirmed"}, nil, http.StatusOK},
		{"not found", "b-2", nil, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "b-3", nil, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			if tt.resp != nil {
				svc.On("GetByID", mock.Anything, tt.id).Return(tt.resp, nil)
			} else {
				svc.On("GetByID", mock.Anything, tt.id).Return(nil, tt.err)
			}

			rec := serve(NewHandler(svc, logger.NewNop()), tt.id)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Handle_MissingID(t *testing.T) {
	svc := new(MockBookingService)

	rec := serve(NewHandler(svc, logger.NewNop()), " ")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
