package models

import (
	"errors"
	"time"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Statuses  []string   `json:"statuses,omitempty"`  // Фильтр по статусам (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, ErrInvalidPeriod
	}

	for _, s := range r.Statuses {
		status, err := ToDomainBookingStatus(s)
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // "2024-06-10"
	Time          string  `json:"time"` // "14:00"
	ClientName    string  `json:"clientName"`
	ClientContact string  `json:"clientContact"`
	ProcedureID   string  `json:"procedureId"`
	ProcedureName string  `json:"procedureName"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`

	ReminderSent            bool `json:"reminderSent"`
	MaintenanceReminderSent bool `json:"maintenanceReminderSent"`

	CompletedAt *string `json:"completedAt,omitempty"` // ISO 8601 format
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// MarkReminderResponse результат отметки об отправке напоминания
// AlreadySent = true означает, что флаг уже стоял; для клиента это тоже успех
type MarkReminderResponse struct {
	Booking     *BookingResponse `json:"booking"`
	AlreadySent bool             `json:"alreadySent"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                      b.ID,
		Date:                    b.Date.Format(domain.DateFormat),
		Time:                    b.Time.String(),
		ClientName:              b.ClientName,
		ClientContact:           b.ClientContact,
		ProcedureID:             b.ProcedureID,
		ProcedureName:           b.ProcedureName,
		Notes:                   b.Notes,
		Status:                  string(b.Status),
		ReminderSent:            b.ReminderSent,
		MaintenanceReminderSent: b.MaintenanceReminderSent,
		CreatedAt:               b.CreatedAt,
		UpdatedAt:               b.UpdatedAt,
	}

	resp.CompletedAt = formatTimestamp(b.CompletedAt)
	resp.CancelledAt = formatTimestamp(b.CancelledAt)

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
