package update_weekend_flag

import (
	"errors"
	"net/http"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "открывать и закрывать можно только субботу и воскресенье"
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

// Handle PUT /api/v1/availability/policy/weekend
// Меняет только один флаг; блокировки на даты не трогаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateWeekendFlagRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/policy/weekend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /availability/policy/weekend - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /availability/policy/weekend - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.service.SetWeekendFlag(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/policy/weekend - Invalid data: day=%s, error=%v", req.Day, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /availability/policy/weekend - Failed to update flag: day=%s, error=%v", req.Day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/policy/weekend - Flag updated successfully: day=%s, open=%t",
		serviceReq.Day, serviceReq.Open)
	handlers.RespondJSON(w, http.StatusOK, result)
}
