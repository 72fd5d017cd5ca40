package reschedule_booking

import (
	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	rescheduleBooking "github.com/williamfinanuber/lariagendamentos/internal/usecase/reschedule_booking"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Moved   bool                    `json:"moved"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) (*rescheduleBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		Booking: models.FromDomainBooking(resp.Booking),
		Moved:   resp.Moved,
	}
}
