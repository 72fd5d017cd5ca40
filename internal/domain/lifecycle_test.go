package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from   BookingStatus
		action BookingAction
		want   BookingStatus
		ok     bool
	}{
		{StatusPending, ActionConfirm, StatusConfirmed, true},
		{StatusPending, ActionCancel, StatusCancelled, true},
		{StatusPending, ActionComplete, "", false},
		{StatusConfirmed, ActionComplete, StatusCompleted, true},
		{StatusConfirmed, ActionCancel, StatusCancelled, true},
		{StatusConfirmed, ActionConfirm, "", false},
		{StatusCompleted, ActionConfirm, "", false},
		{StatusCompleted, ActionComplete, "", false},
		{StatusCompleted, ActionCancel, "", false},
		{StatusCancelled, ActionConfirm, "", false},
		{StatusCancelled, ActionComplete, "", false},
		{StatusCancelled, ActionCancel, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, ok := NextStatus(tt.from, tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLifecycle_CompletedIsTerminal(t *testing.T) {
	b := &Booking{ID: "b1", Status: StatusPending}

	confirmed, err := Confirm(b)
	require.NoError(t, err)
	completed, err := Complete(confirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.True(t, completed.IsTerminal())
	assert.False(t, completed.MaintenanceReminderSent)

	for _, op := range []func(*Booking) (*Booking, error){Confirm, Cancel, Complete} {
		updated, err := op(completed)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
	assert.Equal(t, StatusCompleted, completed.Status)
}

func TestLifecycle_DoesNotMutateInput(t *testing.T) {
	b := &Booking{ID: "b1", Status: StatusPending}

	cancelled, err := Cancel(b)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, StatusPending, b.Status)
}

func TestLifecycle_InvalidTransitionDetails(t *testing.T) {
	_, err := Complete(&Booking{ID: "b7", Status: StatusPending})

	var transitionErr *InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "b7", transitionErr.BookingID)
	assert.Equal(t, StatusPending, transitionErr.From)
	assert.Equal(t, ActionComplete, transitionErr.Action)
}

func TestMarkReminderSent_Idempotent(t *testing.T) {
	b := &Booking{ID: "b1", Status: StatusConfirmed}

	first, err := MarkReminderSent(b)
	require.NoError(t, err)
	assert.True(t, first.ReminderSent)

	second, err := MarkReminderSent(first)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadySent)
	assert.True(t, first.ReminderSent)

	var sentErr *AlreadySentError
	require.True(t, errors.As(err, &sentErr))
	assert.Equal(t, ReminderDayBefore, sentErr.Kind)
}

func TestMarkMaintenanceReminderSent(t *testing.T) {
	_, err := MarkMaintenanceReminderSent(&Booking{ID: "b1", Status: StatusConfirmed})
	assert.ErrorIs(t, err, ErrNotCompleted)

	completed := &Booking{ID: "b2", Status: StatusCompleted}
	marked, err := MarkMaintenanceReminderSent(completed)
	require.NoError(t, err)
	assert.True(t, marked.MaintenanceReminderSent)
	assert.False(t, completed.MaintenanceReminderSent)

	_, err = MarkMaintenanceReminderSent(marked)
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestParseBookingAction(t *testing.T) {
	action, err := ParseBookingAction("complete")
	require.NoError(t, err)
	assert.Equal(t, ActionComplete, action)

	_, err = ParseBookingAction("reopen")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
