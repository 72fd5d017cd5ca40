package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

// WeeklyPolicy is the default weekly opening template.
// Monday to Friday are always open; Saturday and Sunday follow their flags.
// Values are treated as immutable: the With* methods return modified copies.
type WeeklyPolicy struct {
	SaturdayOpen bool
	SundayOpen   bool
	BaseSlots    map[time.Weekday][]types.TimeString
	UpdatedAt    time.Time
}

// DateOverride is the per-date block list layered over the weekly template.
// An empty BlockedTimes list is equivalent to no override.
type DateOverride struct {
	Date         time.Time
	BlockedTimes []types.TimeString
	UpdatedAt    time.Time
}

// IsEmpty returns true if the override blocks nothing
func (o *DateOverride) IsEmpty() bool {
	return o == nil || len(o.BlockedTimes) == 0
}

// IsBlocked returns true if t is in the block list
func (o *DateOverride) IsBlocked(t types.TimeString) bool {
	if o == nil {
		return false
	}
	for _, blocked := range o.BlockedTimes {
		if blocked == t {
			return true
		}
	}
	return false
}

// IsOpen reports whether the weekday is open under this policy
func (p WeeklyPolicy) IsOpen(weekday time.Weekday) bool {
	switch weekday {
	case time.Saturday:
		return p.SaturdayOpen
	case time.Sunday:
		return p.SundayOpen
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return true
	default:
		return false
	}
}

// OpenWeekdays returns the open weekdays, Monday first
func (p WeeklyPolicy) OpenWeekdays() []time.Weekday {
	open := make([]time.Weekday, 0, len(Weekdays))
	for _, wd := range Weekdays {
		if p.IsOpen(wd) {
			open = append(open, wd)
		}
	}
	return open
}

// SlotsFor returns a copy of the base slots configured for the weekday
func (p WeeklyPolicy) SlotsFor(weekday time.Weekday) []types.TimeString {
	slots := p.BaseSlots[weekday]
	result := make([]types.TimeString, len(slots))
	copy(result, slots)
	return result
}

// WithWeekendFlag returns a copy with a single weekend flag changed.
// Base slots are shared with the receiver; overrides are not involved at all.
func (p WeeklyPolicy) WithWeekendFlag(day time.Weekday, open bool) (WeeklyPolicy, error) {
	switch day {
	case time.Saturday:
		p.SaturdayOpen = open
	case time.Sunday:
		p.SundayOpen = open
	default:
		return p, fmt.Errorf("%w: %s", ErrWeekendOnly, day)
	}
	return p, nil
}

// WithBaseSlots returns a copy where the weekday's base slots are replaced
// by the given times, de-duplicated and sorted
func (p WeeklyPolicy) WithBaseSlots(weekday time.Weekday, slots []types.TimeString) (WeeklyPolicy, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return p, fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return p, err
		}
	}

	base := make(map[time.Weekday][]types.TimeString, len(p.BaseSlots)+1)
	for wd, s := range p.BaseSlots {
		base[wd] = s
	}
	base[weekday] = types.UniqueSorted(slots)
	p.BaseSlots = base
	return p, nil
}

// NewDefaultPolicy builds a policy with the same base slots on every weekday
func NewDefaultPolicy(saturdayOpen, sundayOpen bool, slots []types.TimeString) WeeklyPolicy {
	base := make(map[time.Weekday][]types.TimeString, len(Weekdays))
	normalized := types.UniqueSorted(slots)
	for _, wd := range Weekdays {
		base[wd] = normalized
	}
	return WeeklyPolicy{
		SaturdayOpen: saturdayOpen,
		SundayOpen:   sundayOpen,
		BaseSlots:    base,
	}
}

// ParseWeekday accepts english names ("monday", "Mon") or numbers 0-6 (0 = Sunday)
func ParseWeekday(s string) (time.Weekday, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if len(value) == 1 && value[0] >= '0' && value[0] <= '6' {
		return time.Weekday(value[0] - '0'), nil
	}
	if len(value) >= 3 {
		for _, wd := range Weekdays {
			name := strings.ToLower(wd.String())
			if strings.HasPrefix(name, value) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate compares calendar dates ignoring time of day and location
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatDate formats a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
