package claim_reminder

import (
	"context"

	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

type RemindersUseCase interface {
	Claim(ctx context.Context, req *reminders.ClaimRequest) (*reminders.ClaimResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
