package update_weekday_slots

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

// UpdateWeekdaySlotsRequest HTTP request model
// Пустой массив означает, что в этот день слотов нет
type UpdateWeekdaySlotsRequest struct {
	Slots []string `json:"slots" validate:"required,dive,hhmm"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWeekdaySlotsRequest) ToServiceRequest(weekday time.Weekday) *models.SetWeekdaySlotsRequest {
	return &models.SetWeekdaySlotsRequest{
		Weekday: weekday,
		Slots:   r.Slots,
	}
}
