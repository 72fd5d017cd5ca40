package claim_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

const (
	msgInvalidParams  = "некорректный ID бронирования или вид напоминания"
	msgNotFound       = "бронирование не найдено"
	msgNotEligible    = "отмененному бронированию напоминание не отправляется"
	msgNotCompleted   = "сообщение о поддерживающей процедуре доступно только после завершения"
	msgClaimHeld      = "напоминание уже отправляет другой оператор"
	msgInvalidContact = "в контакте клиента нет номера телефона"
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

// Handle POST /api/v1/bookings/{bookingId}/reminders/{kind}/claim
// Если напоминание уже отмечено, возвращает alreadySent=true без захвата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	kind := domain.ReminderKind(vars["kind"])

	result, err := h.useCase.Claim(r.Context(), &reminders.ClaimRequest{
		BookingID: bookingID,
		Kind:      kind,
	})
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, reminders.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reminders.ErrNotEligible):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Not eligible: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotEligible)

		case errors.Is(err, domain.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Not completed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotCompleted)

		case errors.Is(err, reminders.ErrClaimHeld):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Claim held: booking_id=%s, kind=%s", bookingID, kind)
			handlers.RespondConflict(w, msgClaimHeld)

		case errors.Is(err, reminders.ErrInvalidContact):
			h.logger.Warn("POST /bookings/{id}/reminders/{kind}/claim - Invalid contact: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidContact)

		default:
			h.logger.Error("POST /bookings/{id}/reminders/{kind}/claim - Failed to claim: booking_id=%s, kind=%s, error=%v",
				bookingID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reminders/{kind}/claim - Claim processed: booking_id=%s, kind=%s, already_sent=%t",
		bookingID, kind, result.AlreadySent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
