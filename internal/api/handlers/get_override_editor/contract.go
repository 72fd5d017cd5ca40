package get_override_editor

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

type AvailabilityService interface {
	GetOverrideEditor(ctx context.Context, date time.Time) (*models.OverrideEditorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
