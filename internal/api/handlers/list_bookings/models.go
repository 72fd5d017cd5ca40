package list_bookings

import (
	"strings"

	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// status можно передать несколько раз или через запятую
func ToServiceRequest(fromStr, toStr string, statuses []string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if fromStr != "" {
		from, err := handlers.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := handlers.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	for _, value := range statuses {
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Statuses = append(req.Statuses, s)
			}
		}
	}

	return req, nil
}
