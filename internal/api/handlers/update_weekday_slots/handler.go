package update_weekday_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability"
)

const (
	msgInvalidWeekday     = "некорректный день недели"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlots       = "некорректный список слотов, ожидается массив времени HH:MM"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability/policy/weekdays/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekdayStr := mux.Vars(r)["weekday"]

	weekday, err := domain.ParseWeekday(weekdayStr)
	if err != nil {
		h.logger.Warn("PUT /availability/policy/weekdays/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req UpdateWeekdaySlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/policy/weekdays/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /availability/policy/weekdays/{weekday} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlots)
		return
	}

	result, err := h.service.SetWeekdaySlots(r.Context(), req.ToServiceRequest(weekday))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/policy/weekdays/{weekday} - Invalid data: weekday=%s, error=%v", weekday, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("PUT /availability/policy/weekdays/{weekday} - Failed to update slots: weekday=%s, error=%v",
				weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/policy/weekdays/{weekday} - Slots updated successfully: weekday=%s, count=%d",
		weekday, len(req.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
