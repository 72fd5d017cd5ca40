package get_reminder_worklist

import (
	"net/http"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// HandleDayBefore GET /api/v1/reminders/day-before
// Query params: today (опционально, YYYY-MM-DD; по умолчанию текущая дата студии)
func (h *Handler) HandleDayBefore(w http.ResponseWriter, r *http.Request) {
	var today time.Time

	if todayStr := r.URL.Query().Get("today"); todayStr != "" {
		parsed, err := handlers.ParseDate(todayStr)
		if err != nil {
			h.logger.Warn("GET /reminders/day-before - Invalid today: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		today = parsed
	}

	list, err := h.useCase.DayBefore(r.Context(), today)
	if err != nil {
		h.logger.Error("GET /reminders/day-before - Failed to get worklist: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reminders/day-before - Worklist retrieved successfully: count=%d", len(list.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(list))
}

// HandleMaintenance GET /api/v1/reminders/maintenance
// Самые давние завершенные бронирования первыми
func (h *Handler) HandleMaintenance(w http.ResponseWriter, r *http.Request) {
	list, err := h.useCase.Maintenance(r.Context())
	if err != nil {
		h.logger.Error("GET /reminders/maintenance - Failed to get worklist: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reminders/maintenance - Worklist retrieved successfully: count=%d", len(list.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(list))
}
