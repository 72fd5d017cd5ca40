package create_booking

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// PolicyLoader источник недельной политики и блокировок на дату
type PolicyLoader interface {
	LoadPolicy(ctx context.Context) (*domain.WeeklyPolicy, error)
	GetOverride(ctx context.Context, date time.Time) (*domain.DateOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные метрики
type Metrics interface {
	ObserveBookingCreated(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
// Location - часовой пояс студии; nil означает локальное время процесса
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе студии
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
