package save_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimes       = "некорректный список блокировок, ожидается массив времени HH:MM"
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

// Handle PUT /api/v1/availability/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("PUT /availability/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SaveOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /availability/overrides/{date} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.service.SaveOverride(r.Context(), req.ToServiceRequest(date))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/overrides/{date} - Invalid data: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidTimes)

		default:
			h.logger.Error("PUT /availability/overrides/{date} - Failed to save override: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/overrides/{date} - Override saved successfully: date=%s, blocked=%d",
		dateStr, len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
