package create_booking

import (
	"github.com/williamfinanuber/lariagendamentos/internal/api/handlers"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/service/bookings/models"
	createBooking "github.com/williamfinanuber/lariagendamentos/internal/usecase/create_booking"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date" validate:"required,isodate"`
	StartTime     string  `json:"startTime" validate:"required,hhmm"`
	ClientName    string  `json:"clientName" validate:"required,max=120"`
	ClientContact string  `json:"clientContact" validate:"required,max=40"`
	ProcedureID   string  `json:"procedureId" validate:"required,max=120"`
	ProcedureName string  `json:"procedureName" validate:"required,max=120"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:          date,
		StartTime:     startTime,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		ProcedureID:   r.ProcedureID,
		ProcedureName: r.ProcedureName,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		ID:            resp.ID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.StartTime.String(),
		ClientName:    resp.ClientName,
		ClientContact: resp.ClientContact,
		ProcedureID:   resp.ProcedureID,
		ProcedureName: resp.ProcedureName,
		Notes:         resp.Notes,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
