package get_reminder_worklist

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

type RemindersUseCase interface {
	DayBefore(ctx context.Context, today time.Time) (*reminders.Worklist, error)
	Maintenance(ctx context.Context) (*reminders.Worklist, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
