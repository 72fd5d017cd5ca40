package get_available_slots

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFilter получает бронирования по фильтру (дата + активные статусы)
	GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// PolicyLoader источник недельной политики и блокировок на дату
type PolicyLoader interface {
	LoadPolicy(ctx context.Context) (*domain.WeeklyPolicy, error)
	// GetOverride возвращает nil, если блокировок на дату нет
	GetOverride(ctx context.Context, date time.Time) (*domain.DateOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
