package get_reminder_worklist

import (
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

// WorklistResponse HTTP response model
type WorklistResponse struct {
	Kind  string         `json:"kind"`
	Today string         `json:"today,omitempty"`
	Items []WorklistItem `json:"items"`
}

// WorklistItem бронирование и готовое сообщение
// message отсутствует, если в контакте клиента нет номера
type WorklistItem struct {
	Booking models.BookingResponse `json:"booking"`
	Message *MessageResponse       `json:"message,omitempty"`
}

// MessageResponse готовое сообщение и ссылка на чат
type MessageResponse struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// FromUseCaseResponse конвертирует очередь use case в HTTP response
func FromUseCaseResponse(list *reminders.Worklist) *WorklistResponse {
	resp := &WorklistResponse{
		Kind:  string(list.Kind),
		Items: make([]WorklistItem, 0, len(list.Items)),
	}

	if !list.Today.IsZero() {
		resp.Today = domain.FormatDate(list.Today)
	}

	for _, item := range list.Items {
		converted := WorklistItem{Booking: *models.FromDomainBooking(item.Booking)}
		if item.Message != nil {
			converted.Message = &MessageResponse{
				Phone: item.Message.Phone,
				Text:  item.Message.Message,
				Link:  item.Message.Link,
			}
		}
		resp.Items = append(resp.Items, converted)
	}

	return resp
}
