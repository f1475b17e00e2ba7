package domain

import "time"

// SlotStatus represents the advisory status of an availability slot.
// Status is display-only: capacity (MaxBookings) is the authoritative
// availability control.
type SlotStatus string

const (
	SlotStatusOpen   SlotStatus = "open"
	SlotStatusClosed SlotStatus = "closed"
)

// AvailabilitySlot is an administrator-defined bookable time window with a
// finite capacity. Slots are never mutated after creation.
type AvailabilitySlot struct {
	ID          int64
	StartAt     time.Time
	EndAt       time.Time
	Label       *string
	MaxBookings int
	Status      SlotStatus
}

// HasCapacity returns true if one more booking fits given the current
// number of bookings referencing this slot
func (s *AvailabilitySlot) HasCapacity(currentCount int) bool {
	return currentCount < s.MaxBookings
}

// IsClosed returns true if the slot was marked closed by an administrator
func (s *AvailabilitySlot) IsClosed() bool {
	return s.Status == SlotStatusClosed
}

// SlotWithCount is a slot together with the number of bookings that
// reference it, as listed on the public booking page.
type SlotWithCount struct {
	AvailabilitySlot
	BookingCount int
}

// RemainingSpots returns how many bookings the slot can still take
func (s *SlotWithCount) RemainingSpots() int {
	remaining := s.MaxBookings - s.BookingCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotWithCount) IsFull() bool {
	return s.BookingCount >= s.MaxBookings
}
