package mark_reminder_sent

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректный ID бронирования или вид напоминания"
	msgNotFound           = "бронирование не найдено"
	msgNotCompleted       = "сообщение о поддерживающей процедуре доступно только после завершения"
)

type Handler struct {
	useCase RemindersUseCase
	logger  Logger
}

func NewHandler(useCase RemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reminders/{kind}/sent
// Повторная отметка возвращает 200 с alreadySent=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	kind := domain.ReminderKind(vars["kind"])

	var req MarkSentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings/{id}/reminders/{kind}/sent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Sent(r.Context(), &reminders.SentRequest{
		BookingID: bookingID,
		Kind:      kind,
		Token:     req.Token,
	})
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/sent - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/sent - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/sent - Not completed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotCompleted)

		default:
			h.logger.Error("POST /bookings/{id}/reminders/{kind}/sent - Failed to mark: booking_id=%s, kind=%s, error=%v",
				bookingID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reminders/{kind}/sent - Reminder marked: booking_id=%s, kind=%s, already_sent=%t",
		bookingID, kind, result.AlreadySent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
