package release_reminder_claim

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

type RemindersUseCase interface {
	Release(ctx context.Context, req *reminders.ReleaseRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
