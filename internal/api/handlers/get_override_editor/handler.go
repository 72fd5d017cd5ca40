package get_override_editor

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/availability/overrides/{date}
// Возвращает базовые слоты дня вместе с ранее заблокированными временами,
// чтобы блокировку можно было снять даже после смены шаблона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetOverrideEditor(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /availability/overrides/{date} - Failed to get override: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/overrides/{date} - Override retrieved successfully: date=%s, blocked=%d",
		dateStr, len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
