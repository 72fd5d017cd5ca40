package reschedule_booking

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID string           // ID бронирования
	Date      time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое время слота
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Booking *domain.Booking // Бронирование после переноса
	Moved   bool            // false, если дата и время не изменились
}
