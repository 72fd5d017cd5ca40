package availability

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// PolicyRepository интерфейс репозитория недельной политики
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.WeeklyPolicy, error)
	SetWeekendFlag(ctx context.Context, policy domain.WeeklyPolicy, day time.Weekday) error
	GetAllSlots(ctx context.Context) (map[time.Weekday][]types.TimeString, error)
	ReplaceForWeekday(ctx context.Context, weekday time.Weekday, slots []types.TimeString) error
}

// OverrideRepository интерфейс репозитория блокировок на даты
type OverrideRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*domain.DateOverride, error)
	Upsert(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
