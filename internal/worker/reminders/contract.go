package reminders

import (
	"context"
	"time"

	remindersUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

// WorklistSource очереди напоминаний
type WorklistSource interface {
	DayBefore(ctx context.Context, today time.Time) (*remindersUC.Worklist, error)
	Maintenance(ctx context.Context) (*remindersUC.Worklist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
