package domain

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// findOccupant returns the active booking holding (date, t), skipping excludingID
func findOccupant(date time.Time, t types.TimeString, bookings []*Booking, excludingID string) *Booking {
	for _, b := range bookings {
		if excludingID != "" && b.ID == excludingID {
			continue
		}
		if b.Occupies(date, t) {
			return b
		}
	}
	return nil
}

// CheckSlotAvailable reports whether (date, t) is free. Cancelled bookings
// never occupy a slot; excludingID lets an edited booking ignore itself.
func CheckSlotAvailable(date time.Time, t types.TimeString, bookings []*Booking, excludingID string) SlotAvailability {
	if findOccupant(date, t, bookings, excludingID) != nil {
		return SlotOccupied
	}
	return SlotAvailable
}

// EnsureSlotAvailable is CheckSlotAvailable returning *SlotConflictError on occupancy
func EnsureSlotAvailable(date time.Time, t types.TimeString, bookings []*Booking, excludingID string) error {
	occupant := findOccupant(date, t, bookings, excludingID)
	if occupant == nil {
		return nil
	}
	return &SlotConflictError{
		Date:                 FormatDate(date),
		Time:                 t,
		ConflictingBookingID: occupant.ID,
	}
}

// MarkOccupancy pairs resolved slots with their occupancy on the date
func MarkOccupancy(date time.Time, slots []types.TimeString, bookings []*Booking) []AvailableSlot {
	result := make([]AvailableSlot, len(slots))
	for i, t := range slots {
		result[i] = AvailableSlot{Time: t, Available: true}
		if occupant := findOccupant(date, t, bookings, ""); occupant != nil {
			result[i].Available = false
			result[i].BookingID = occupant.ID
		}
	}
	return result
}
