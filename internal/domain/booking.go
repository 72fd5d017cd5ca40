package domain

import (
	"fmt"
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a status against the closed set
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Booking represents a client appointment in a single slot
type Booking struct {
	ID   string
	Date time.Time
	Time types.TimeString

	ClientName    string
	ClientContact string
	ProcedureID   string
	ProcedureName string
	Notes         *string

	Status                  BookingStatus
	ReminderSent            bool
	MaintenanceReminderSent bool

	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCompleted
}

// IsTerminal returns true if no transition can leave the current status
func (b *Booking) IsTerminal() bool {
	return len(transitions[b.Status]) == 0
}

// Occupies returns true if the booking is active and holds the given slot
func (b *Booking) Occupies(date time.Time, t types.TimeString) bool {
	return b.IsActive() && SameDate(b.Date, date) && b.Time == t
}

// Clone returns a shallow copy; pointer fields are replaced, never mutated, by this package
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// BookingFilter filter for listing bookings; nil fields are not applied
type BookingFilter struct {
	StartDate               *time.Time
	EndDate                 *time.Time
	Statuses                []BookingStatus
	ReminderSent            *bool
	MaintenanceReminderSent *bool
}

// SingleDate returns true if the filter targets exactly one date
func (f BookingFilter) SingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && SameDate(*f.StartDate, *f.EndDate)
}
