package update_weekday_slots

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

type AvailabilityService interface {
	SetWeekdaySlots(ctx context.Context, req *models.SetWeekdaySlotsRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
