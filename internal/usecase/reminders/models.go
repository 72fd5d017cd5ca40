package reminders

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
)

// WorklistItem бронирование в очереди напоминаний и готовое сообщение
// Message = nil, если по контакту нельзя построить ссылку
type WorklistItem struct {
	Booking *domain.Booking
	Message *whatsapp.Reminder
}

// Worklist очередь напоминаний одного вида
type Worklist struct {
	Kind  domain.ReminderKind
	Today time.Time // Только для day-before
	Items []WorklistItem
}

// ClaimRequest запрос на захват отправки
type ClaimRequest struct {
	BookingID string
	Kind      domain.ReminderKind
}

// ClaimResponse результат захвата
// AlreadySent = true: флаг уже стоит, захват не выполнялся, Token пустой
type ClaimResponse struct {
	Booking     *domain.Booking
	Token       string
	Message     *whatsapp.Reminder
	AlreadySent bool
}

// ReleaseRequest запрос на освобождение захвата после неудачной отправки
type ReleaseRequest struct {
	BookingID string
	Kind      domain.ReminderKind
	Token     string
}

// SentRequest запрос на отметку об отправке
// Token опционален: если передан, захват освобождается после отметки
type SentRequest struct {
	BookingID string
	Kind      domain.ReminderKind
	Token     string
}
