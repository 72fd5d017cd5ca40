package domain

import (
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// SlotAvailability result of ConflictGuard
type SlotAvailability string

const (
	SlotAvailable SlotAvailability = "available"
	SlotOccupied  SlotAvailability = "occupied"
)

// AvailableSlot a resolved time on a date together with its occupancy
type AvailableSlot struct {
	Time      types.TimeString
	Available bool
	BookingID string // booking holding the slot, empty when available
}

// IsDayClosed reports whether the date's weekday is closed under the policy
func IsDayClosed(date time.Time, policy WeeklyPolicy) bool {
	return !policy.IsOpen(date.Weekday())
}

// ResolveSlots computes the ordered bookable times for a date.
// Closed days resolve to an empty list regardless of the override. Blocked
// times that are not in the base list are ignored.
func ResolveSlots(date time.Time, policy WeeklyPolicy, override *DateOverride) []types.TimeString {
	if IsDayClosed(date, policy) {
		return []types.TimeString{}
	}

	base := policy.BaseSlots[date.Weekday()]
	if len(base) == 0 {
		return []types.TimeString{}
	}

	result := make([]types.TimeString, 0, len(base))
	for _, t := range base {
		if override.IsBlocked(t) {
			continue
		}
		result = append(result, t)
	}

	return types.UniqueSorted(result)
}

// UnionOfKnownAndBlockedSlots is the override editor's view of a date: the
// weekday's base slots plus every previously blocked time, sorted. It ignores
// weekend flags and is not used when creating bookings.
func UnionOfKnownAndBlockedSlots(date time.Time, policy WeeklyPolicy, override *DateOverride) []types.TimeString {
	base := policy.BaseSlots[date.Weekday()]

	all := make([]types.TimeString, 0, len(base))
	all = append(all, base...)
	if override != nil {
		all = append(all, override.BlockedTimes...)
	}

	return types.UniqueSorted(all)
}

// IsResolvedSlot reports whether t is among the resolved slots for the date
func IsResolvedSlot(date time.Time, t types.TimeString, policy WeeklyPolicy, override *DateOverride) bool {
	for _, slot := range ResolveSlots(date, policy, override) {
		if slot == t {
			return true
		}
	}
	return false
}
