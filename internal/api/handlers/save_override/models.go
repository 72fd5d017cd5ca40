package save_override

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

// SaveOverrideRequest HTTP request model
// Список заменяет сохраненный целиком; пустой массив снимает все блокировки
type SaveOverrideRequest struct {
	BlockedTimes []string `json:"blockedTimes" validate:"required,dive,hhmm"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SaveOverrideRequest) ToServiceRequest(date time.Time) *models.SaveOverrideRequest {
	return &models.SaveOverrideRequest{
		Date:         date,
		BlockedTimes: r.BlockedTimes,
	}
}
