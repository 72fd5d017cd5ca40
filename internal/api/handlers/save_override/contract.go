package save_override

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

type AvailabilityService interface {
	SaveOverride(ctx context.Context, req *models.SaveOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
