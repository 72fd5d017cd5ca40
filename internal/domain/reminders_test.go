package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDayBeforeReminders(t *testing.T) {
	today := date("2024-06-10")
	bookings := []*Booking{
		{ID: "late", Date: date("2024-06-11"), Time: "15:00", Status: StatusConfirmed},
		{ID: "early", Date: date("2024-06-11"), Time: "09:00", Status: StatusConfirmed},
		{ID: "sent", Date: date("2024-06-11"), Time: "10:00", Status: StatusConfirmed, ReminderSent: true},
		{ID: "pending", Date: date("2024-06-11"), Time: "11:00", Status: StatusPending},
		{ID: "today", Date: date("2024-06-10"), Time: "11:00", Status: StatusConfirmed},
		{ID: "later", Date: date("2024-06-12"), Time: "11:00", Status: StatusConfirmed},
	}

	due := DueDayBeforeReminders(bookings, today)

	require.Len(t, due, 2)
	assert.Equal(t, "early", due[0].ID)
	assert.Equal(t, "late", due[1].ID)
}

func TestDueDayBeforeReminders_TodayWithTimeOfDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 22, 30, 0, 0, time.UTC)
	bookings := []*Booking{{ID: "b1", Date: date("2024-06-11"), Time: "09:00", Status: StatusConfirmed}}

	assert.Len(t, DueDayBeforeReminders(bookings, now), 1)
}

func TestDueDayBeforeReminders_ExcludedAfterMark(t *testing.T) {
	today := date("2024-06-10")
	booking := &Booking{ID: "b1", Date: date("2024-06-11"), Status: StatusConfirmed}

	require.Len(t, DueDayBeforeReminders([]*Booking{booking}, today), 1)

	marked, err := MarkReminderSent(booking)
	require.NoError(t, err)

	assert.Empty(t, DueDayBeforeReminders([]*Booking{marked}, today))
}

func TestDueMaintenanceOutreach(t *testing.T) {
	bookings := []*Booking{
		{ID: "newer", Date: date("2024-06-05"), Time: "10:00", Status: StatusCompleted},
		{ID: "older", Date: date("2024-05-20"), Time: "10:00", Status: StatusCompleted},
		{ID: "done", Date: date("2024-05-01"), Time: "10:00", Status: StatusCompleted, MaintenanceReminderSent: true},
		{ID: "confirmed", Date: date("2024-05-01"), Time: "10:00", Status: StatusConfirmed},
		{ID: "cancelled", Date: date("2024-05-01"), Time: "10:00", Status: StatusCancelled},
	}

	due := DueMaintenanceOutreach(bookings)

	require.Len(t, due, 2)
	assert.Equal(t, "older", due[0].ID)
	assert.Equal(t, "newer", due[1].ID)
}

func TestReminderKind_MarkSent(t *testing.T) {
	b := &Booking{ID: "b1", Status: StatusCompleted}

	marked, err := ReminderMaintenance.MarkSent(b)
	require.NoError(t, err)
	assert.True(t, ReminderMaintenance.IsSent(marked))
	assert.False(t, ReminderDayBefore.IsSent(marked))

	_, err = ParseReminderKind("weekly")
	assert.Error(t, err)
}
