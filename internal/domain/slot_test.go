package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCapacity(t *testing.T) {
	slot := &AvailabilitySlot{MaxBookings: 2}

	assert.True(t, slot.HasCapacity(0))
	assert.True(t, slot.HasCapacity(1))
	assert.False(t, slot.HasCapacity(2))
	// Перебронированный блок (вместимость сузили позже) остается полным
	assert.False(t, slot.HasCapacity(3))
}

func TestRemainingSpots(t *testing.T) {
	slot := &SlotWithCount{
		AvailabilitySlot: AvailabilitySlot{MaxBookings: 3},
		BookingCount:     1,
	}
	assert.Equal(t, 2, slot.RemainingSpots())

	slot.BookingCount = 5
	assert.Equal(t, 0, slot.RemainingSpots())
}

func TestIsFull(t *testing.T) {
	slot := &SlotWithCount{
		AvailabilitySlot: AvailabilitySlot{MaxBookings: 1},
	}
	assert.False(t, slot.IsFull())

	slot.BookingCount = 1
	assert.True(t, slot.IsFull())
}

func TestIsClosed(t *testing.T) {
	slot := &AvailabilitySlot{Status: SlotStatusOpen}
	assert.False(t, slot.IsClosed())

	slot.Status = SlotStatusClosed
	assert.True(t, slot.IsClosed())
}
