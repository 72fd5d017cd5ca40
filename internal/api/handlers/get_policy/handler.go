package get_policy

import (
	"net/http"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
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

// Handle GET /api/v1/availability/policy
// Пока политика не сохранена, сервис возвращает значения по умолчанию из конфигурации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPolicy(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/policy - Failed to get policy: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/policy - Policy retrieved successfully: open_weekdays=%v", result.OpenWeekdays)
	handlers.RespondJSON(w, http.StatusOK, result)
}
