package claim_reminder

import (
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

// ClaimResponse HTTP response model
// token нужно вернуть при отметке об отправке или при освобождении захвата
type ClaimResponse struct {
	Booking     *models.BookingResponse `json:"booking"`
	AlreadySent bool                    `json:"alreadySent"`
	Token       string                  `json:"token,omitempty"`
	Message     *MessageResponse        `json:"message,omitempty"`
}

// MessageResponse готовое сообщение и ссылка на чат
type MessageResponse struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reminders.ClaimResponse) *ClaimResponse {
	return &ClaimResponse{
		Booking:     models.FromDomainBooking(resp.Booking),
		AlreadySent: resp.AlreadySent,
		Token:       resp.Token,
		Message:     fromReminder(resp.Message),
	}
}

func fromReminder(r *whatsapp.Reminder) *MessageResponse {
	if r == nil {
		return nil
	}
	return &MessageResponse{
		Phone: r.Phone,
		Text:  r.Message,
		Link:  r.Link,
	}
}
