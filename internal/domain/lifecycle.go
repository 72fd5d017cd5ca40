package domain

import "fmt"

// BookingAction an operator action on a booking's status
type BookingAction string

const (
	ActionConfirm  BookingAction = "confirm"
	ActionComplete BookingAction = "complete"
	ActionCancel   BookingAction = "cancel"
)

// ParseBookingAction validates an action name
func ParseBookingAction(s string) (BookingAction, error) {
	switch action := BookingAction(s); action {
	case ActionConfirm, ActionComplete, ActionCancel:
		return action, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, s)
	}
}

// transitions is the whole lifecycle. A (status, action) pair that is not
// listed is rejected; completed and cancelled have no outgoing entries.
var transitions = map[BookingStatus]map[BookingAction]BookingStatus{
	StatusPending: {
		ActionConfirm: StatusConfirmed,
		ActionCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

// NextStatus looks up the transition table
func NextStatus(from BookingStatus, action BookingAction) (BookingStatus, bool) {
	next, ok := transitions[from][action]
	return next, ok
}

// Apply runs an action against a booking and returns the updated copy.
// The input booking is never modified.
func Apply(b *Booking, action BookingAction) (*Booking, error) {
	next, ok := NextStatus(b.Status, action)
	if !ok {
		return nil, &InvalidTransitionError{BookingID: b.ID, From: b.Status, Action: action}
	}

	updated := b.Clone()
	updated.Status = next
	if next == StatusCompleted {
		// eligible for maintenance outreach from here on
		updated.MaintenanceReminderSent = false
	}
	return updated, nil
}

// Confirm pending → confirmed
func Confirm(b *Booking) (*Booking, error) {
	return Apply(b, ActionConfirm)
}

// Complete confirmed → completed
func Complete(b *Booking) (*Booking, error) {
	return Apply(b, ActionComplete)
}

// Cancel pending|confirmed → cancelled
func Cancel(b *Booking) (*Booking, error) {
	return Apply(b, ActionCancel)
}

// MarkReminderSent sets the day-before flag once. A repeat call returns
// *AlreadySentError which callers present as success.
func MarkReminderSent(b *Booking) (*Booking, error) {
	if b.ReminderSent {
		return nil, &AlreadySentError{BookingID: b.ID, Kind: ReminderDayBefore}
	}
	updated := b.Clone()
	updated.ReminderSent = true
	return updated, nil
}

// MarkMaintenanceReminderSent sets the maintenance flag once, completed bookings only
func MarkMaintenanceReminderSent(b *Booking) (*Booking, error) {
	if b.MaintenanceReminderSent {
		return nil, &AlreadySentError{BookingID: b.ID, Kind: ReminderMaintenance}
	}
	if b.Status != StatusCompleted {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrNotCompleted, b.ID, b.Status)
	}
	updated := b.Clone()
	updated.MaintenanceReminderSent = true
	return updated, nil
}
