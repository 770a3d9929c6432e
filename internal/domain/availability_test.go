package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAvailability(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      AvailabilityLevel
	}{
		{name: "zero remaining is full", remaining: 0, want: AvailabilityFull},
		{name: "negative remaining is full", remaining: -1, want: AvailabilityFull},
		{name: "one remaining is limited", remaining: 1, want: AvailabilityLimited},
		{name: "two remaining is available", remaining: 2, want: AvailabilityAvailable},
		{name: "many remaining is available", remaining: 50, want: AvailabilityAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAvailability(tt.remaining))
		})
	}
}

func TestNewSlotAvailability(t *testing.T) {
	slot := &TimeSlot{
		ID:          7,
		Name:        "Morning",
		StartTime:   "09:00",
		EndTime:     "11:00",
		MaxBookings: 3,
		IsActive:    true,
	}

	t.Run("empty slot", func(t *testing.T) {
		report := NewSlotAvailability(slot, 0)

		assert.Equal(t, int64(7), report.SlotID)
		assert.Equal(t, 3, report.MaxBookings)
		assert.Equal(t, 0, report.CurrentBookings)
		assert.Equal(t, 3, report.RemainingSlots)
		assert.True(t, report.IsAvailable)
		assert.Equal(t, AvailabilityAvailable, report.Level)
	})

	t.Run("one remaining", func(t *testing.T) {
		report := NewSlotAvailability(slot, 2)

		assert.Equal(t, 1, report.RemainingSlots)
		assert.True(t, report.IsAvailable)
		assert.Equal(t, AvailabilityLimited, report.Level)
	})

	t.Run("at capacity", func(t *testing.T) {
		report := NewSlotAvailability(slot, 3)

		assert.Equal(t, 0, report.RemainingSlots)
		assert.False(t, report.IsAvailable)
		assert.Equal(t, AvailabilityFull, report.Level)
	})

	t.Run("overbooked reports negative remaining", func(t *testing.T) {
		report := NewSlotAvailability(slot, 4)

		assert.Equal(t, -1, report.RemainingSlots)
		assert.False(t, report.IsAvailable)
		assert.Equal(t, AvailabilityFull, report.Level)
	})

	t.Run("unset capacity falls back to the business default", func(t *testing.T) {
		noCapSlot := &TimeSlot{ID: 8, Name: "Evening", StartTime: "17:00", EndTime: "19:00"}

		report := NewSlotAvailability(noCapSlot, 1)

		assert.Equal(t, DefaultMaxBookings, report.MaxBookings)
		assert.Equal(t, DefaultMaxBookings-1, report.RemainingSlots)
	})
}
