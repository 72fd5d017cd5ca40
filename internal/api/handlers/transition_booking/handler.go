package transition_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidAction    = "неизвестное действие, ожидается confirm, complete или cancel"
	msgNotFound         = "бронирование не найдено"
	msgInvalidStatus    = "действие недоступно в текущем статусе бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/{action}
// action: confirm (pending → confirmed), complete (confirmed → completed),
// cancel (pending|confirmed → cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID := strings.TrimSpace(vars["bookingId"])
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/{action} - Missing booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	action, err := domain.ParseBookingAction(vars["action"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/{action} - Invalid action: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	booking, err := h.service.Transition(r.Context(), bookingID, action)
	if err != nil {
		var transitionErr *domain.InvalidTransitionError

		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/%s - Booking not found: booking_id=%s", action, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &transitionErr):
			h.logger.Warn("POST /bookings/{id}/%s - Invalid transition: booking_id=%s, from=%s",
				action, bookingID, transitionErr.From)
			handlers.RespondConflict(w, msgInvalidStatus)

		default:
			h.logger.Error("POST /bookings/{id}/%s - Failed to apply action: booking_id=%s, error=%v",
				action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/%s - Booking updated successfully: booking_id=%s, status=%s",
		action, bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
