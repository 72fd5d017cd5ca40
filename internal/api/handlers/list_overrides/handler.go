package list_overrides

import (
	"errors"
	"net/http"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability"
)

const (
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidPeriod = "некорректный период, ожидается from <= to в формате YYYY-MM-DD"
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

// Handle GET /api/v1/availability/overrides
// Query params: from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /availability/overrides - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := handlers.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /availability/overrides - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := handlers.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /availability/overrides - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListOverrides(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/overrides - Invalid period: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /availability/overrides - Failed to list overrides: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/overrides - Overrides retrieved successfully: from=%s, to=%s, count=%d",
		fromStr, toStr, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
