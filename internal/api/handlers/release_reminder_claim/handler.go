package release_reminder_claim

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "token обязателен"
	msgInvalidParams      = "некорректный ID бронирования или вид напоминания"
	msgClaimNotOwned      = "захват не найден или принадлежит другому оператору"
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

// Handle DELETE /api/v1/bookings/{bookingId}/reminders/{kind}/claim
// Вызывается после неудачной отправки: флаг не меняется, бронирование остается в очереди
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	kind := domain.ReminderKind(vars["kind"])

	var req ReleaseClaimRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /bookings/{id}/reminders/{kind}/claim - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("DELETE /bookings/{id}/reminders/{kind}/claim - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	err := h.useCase.Release(r.Context(), &reminders.ReleaseRequest{
		BookingID: bookingID,
		Kind:      kind,
		Token:     req.Token,
	})
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id}/reminders/{kind}/claim - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, reminders.ErrClaimNotOwned):
			h.logger.Warn("DELETE /bookings/{id}/reminders/{kind}/claim - Claim not owned: booking_id=%s, kind=%s",
				bookingID, kind)
			handlers.RespondConflict(w, msgClaimNotOwned)

		default:
			h.logger.Error("DELETE /bookings/{id}/reminders/{kind}/claim - Failed to release: booking_id=%s, kind=%s, error=%v",
				bookingID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/reminders/{kind}/claim - Claim released: booking_id=%s, kind=%s", bookingID, kind)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
