package domain

import (
	"errors"
	"fmt"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

var (
	// ErrInvalidTransition requested status change is not permitted from the current state
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadySent reminder flag is already set; callers treat it as success
	ErrAlreadySent = errors.New("reminder already sent")

	// ErrSlotConflict date/time is already held by an active booking
	ErrSlotConflict = errors.New("slot already occupied")

	// ErrNotCompleted maintenance outreach requires a completed booking
	ErrNotCompleted = errors.New("booking is not completed")

	// ErrInvalidStatus unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidWeekday unknown weekday
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrWeekendOnly only saturday and sunday have opening flags
	ErrWeekendOnly = errors.New("only saturday and sunday can be toggled")
)

// InvalidTransitionError carries the rejected transition
type InvalidTransitionError struct {
	BookingID string
	From      BookingStatus
	Action    BookingAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: booking %s cannot %s from %s", ErrInvalidTransition, e.BookingID, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadySentError carries the booking whose flag is already set
type AlreadySentError struct {
	BookingID string
	Kind      ReminderKind
}

func (e *AlreadySentError) Error() string {
	return fmt.Sprintf("%s: booking %s, kind %s", ErrAlreadySent, e.BookingID, e.Kind)
}

func (e *AlreadySentError) Unwrap() error {
	return ErrAlreadySent
}

// SlotConflictError carries the contested slot and the booking holding it
type SlotConflictError struct {
	Date                 string
	Time                 types.TimeString
	ConflictingBookingID string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s held by booking %s", ErrSlotConflict, e.Date, e.Time, e.ConflictingBookingID)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
