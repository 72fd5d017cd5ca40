package get_policy

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

type AvailabilityService interface {
	GetPolicy(ctx context.Context) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
