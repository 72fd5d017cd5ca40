package domain

import (
	"fmt"
	"sort"
	"time"
)

// ReminderKind kind of outbound follow-up
type ReminderKind string

const (
	ReminderDayBefore   ReminderKind = "day-before"
	ReminderMaintenance ReminderKind = "maintenance"
)

// ParseReminderKind validates a reminder kind
func ParseReminderKind(s string) (ReminderKind, error) {
	switch kind := ReminderKind(s); kind {
	case ReminderDayBefore, ReminderMaintenance:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown reminder kind %q", s)
	}
}

// MarkSent dispatches to the flag setter for the kind
func (k ReminderKind) MarkSent(b *Booking) (*Booking, error) {
	if k == ReminderMaintenance {
		return MarkMaintenanceReminderSent(b)
	}
	return MarkReminderSent(b)
}

// IsSent reports the flag for the kind
func (k ReminderKind) IsSent(b *Booking) bool {
	if k == ReminderMaintenance {
		return b.MaintenanceReminderSent
	}
	return b.ReminderSent
}

// DueDayBeforeReminders selects confirmed bookings dated the day after today
// whose reminder has not been sent, ordered by time
func DueDayBeforeReminders(bookings []*Booking, today time.Time) []*Booking {
	tomorrow := DateOnly(today).AddDate(0, 0, 1)

	due := make([]*Booking, 0)
	for _, b := range bookings {
		if b.Status != StatusConfirmed || b.ReminderSent {
			continue
		}
		if !SameDate(b.Date, tomorrow) {
			continue
		}
		due = append(due, b)
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Time.IsBefore(due[j].Time)
	})
	return due
}

// DueMaintenanceOutreach selects completed bookings without maintenance
// outreach, oldest first
func DueMaintenanceOutreach(bookings []*Booking) []*Booking {
	due := make([]*Booking, 0)
	for _, b := range bookings {
		if b.Status == StatusCompleted && !b.MaintenanceReminderSent {
			due = append(due, b)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !SameDate(due[i].Date, due[j].Date) {
			return due[i].Date.Before(due[j].Date)
		}
		return due[i].Time.IsBefore(due[j].Time)
	})
	return due
}
