package mark_reminder_sent

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

type RemindersUseCase interface {
	Sent(ctx context.Context, req *reminders.SentRequest) (*models.MarkReminderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
