package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyPolicy_OpenWeekdays(t *testing.T) {
	policy := WeeklyPolicy{SaturdayOpen: true}

	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	}, policy.OpenWeekdays())
}

func TestWeeklyPolicy_WithWeekendFlag(t *testing.T) {
	policy := testPolicy()

	updated, err := policy.WithWeekendFlag(time.Sunday, true)
	require.NoError(t, err)

	assert.True(t, updated.SundayOpen)
	assert.False(t, policy.SundayOpen)
	assert.Equal(t, policy.SaturdayOpen, updated.SaturdayOpen)
	assert.Equal(t, policy.BaseSlots, updated.BaseSlots)

	_, err = policy.WithWeekendFlag(time.Monday, false)
	assert.ErrorIs(t, err, ErrWeekendOnly)
}

func TestWeeklyPolicy_WithBaseSlots(t *testing.T) {
	policy := testPolicy()

	updated, err := policy.WithBaseSlots(time.Wednesday, times("15:00", "09:00", "15:00"))
	require.NoError(t, err)

	assert.Equal(t, times("09:00", "15:00"), updated.SlotsFor(time.Wednesday))
	assert.Empty(t, policy.SlotsFor(time.Wednesday))

	_, err = policy.WithBaseSlots(time.Wednesday, times("9:00"))
	assert.Error(t, err)
}

func TestNewDefaultPolicy(t *testing.T) {
	policy := NewDefaultPolicy(true, false, times("10:00", "09:00"))

	for _, wd := range Weekdays {
		assert.Equal(t, times("09:00", "10:00"), policy.SlotsFor(wd))
	}
	assert.True(t, policy.IsOpen(time.Saturday))
	assert.False(t, policy.IsOpen(time.Sunday))
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"monday": time.Monday,
		"Sat":    time.Saturday,
		"0":      time.Sunday,
		"3":      time.Wednesday,
	}
	for input, want := range tests {
		got, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "7", "mo", "funday"} {
		_, err := ParseWeekday(input)
		assert.ErrorIs(t, err, ErrInvalidWeekday, input)
	}
}
