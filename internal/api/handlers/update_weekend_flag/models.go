package update_weekend_flag

import (
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/availability/models"
)

// UpdateWeekendFlagRequest HTTP request model
type UpdateWeekendFlagRequest struct {
	Day  string `json:"day" validate:"required,weekend"` // "saturday" | "sunday"
	Open *bool  `json:"open" validate:"required"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWeekendFlagRequest) ToServiceRequest() (*models.SetWeekendFlagRequest, error) {
	day, err := domain.ParseWeekday(r.Day)
	if err != nil {
		return nil, err
	}

	return &models.SetWeekendFlagRequest{
		Day:  day,
		Open: *r.Open,
	}, nil
}
