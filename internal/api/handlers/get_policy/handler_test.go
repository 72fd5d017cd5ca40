package get_policy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetPolicy(ctx context.Context) (*models.PolicyResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PolicyResponse), args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	svc := new(MockAvailabilityService)
	svc.On("GetPolicy", mock.Anything).Return(&models.PolicyResponse{
		SaturdayOpen: true,
		OpenWeekdays: []string{"Monday", "Saturday"},
		Weekdays: []models.WeekdaySlots{
			{Weekday: "Monday", Open: true, Slots: []string{"09:00"}},
		},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/policy", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.PolicyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.SaturdayOpen)
	assert.False(t, body.SundayOpen)
	assert.Equal(t, []string{"09:00"}, body.Weekdays[0].Slots)
}

func TestHandler_Handle_Error(t *testing.T) {
	svc := new(MockAvailabilityService)
	svc.On("GetPolicy", mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/policy", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
