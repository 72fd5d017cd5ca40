package get_override_editor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetOverrideEditor(ctx context.Context, date time.Time) (*models.OverrideEditorResponse, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OverrideEditorResponse), args.Error(1)
}

func serve(h *Handler, date string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/overrides/"+date, nil)
	req = mux.SetURLVars(req, map[string]string{"date": date})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(MockAvailabilityService)
	svc.On("GetOverrideEditor", mock.Anything, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)).
		Return(&models.OverrideEditorResponse{
			Date:          "2024-06-10",
			KnownSlots:    []string{"08:00", "09:00", "10:00"},
			BlockedTimes:  []string{"08:00", "10:00"},
			ResolvedSlots: []string{"09:00"},
		}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "2024-06-10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date":"2024-06-10",
		"closed":false,
		"knownSlots":["08:00","09:00","10:00"],
		"blockedTimes":["08:00","10:00"],
		"resolvedSlots":["09:00"]
	}`, rec.Body.String())
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	svc := new(MockAvailabilityService)

	rec := serve(NewHandler(svc, logger.NewNop()), "2024-13-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetOverrideEditor", mock.Anything, mock.Anything)
}

func TestHandler_Handle_Error(t *testing.T) {
	svc := new(MockAvailabilityService)
	svc.On("GetOverrideEditor", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := serve(NewHandler(svc, logger.NewNop()), "2024-06-10")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
