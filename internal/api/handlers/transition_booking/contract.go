package transition_booking

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
)

type BookingService interface {
	Transition(ctx context.Context, id string, action domain.BookingAction) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
