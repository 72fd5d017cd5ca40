package reminders

import (
	"context"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// ReminderMarker отметка об отправке (сервис бронирований)
type ReminderMarker interface {
	MarkReminderSent(ctx context.Context, id string, kind domain.ReminderKind) (*models.MarkReminderResponse, error)
}

// SendGuard захват отправки напоминания
type SendGuard interface {
	Claim(ctx context.Context, bookingID string, kind domain.ReminderKind) (string, error)
	Release(ctx context.Context, bookingID string, kind domain.ReminderKind, token string) error
}

// MessageComposer составляет текст и ссылку на чат
type MessageComposer interface {
	Compose(kind domain.ReminderKind, b *domain.Booking) (*whatsapp.Reminder, error)
}

// Metrics размер очередей напоминаний
type Metrics interface {
	SetRemindersDue(kind string, count int)
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

// RealTimeProvider реальный провайдер времени в часовом поясе студии
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
