package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"

	// Cancellation statuses are reserved for a future cancel/reschedule flow.
	// Capacity accounting deliberately counts bookings in ANY status: a slot
	// seat is released only by deleting the booking row, never by a status
	// change.
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledByStudio BookingStatus = "cancelled_by_studio"
)

// Booking links one customer to one availability slot.
// Selected services are attached through BookingService rows.
type Booking struct {
	ID          int64
	SlotID      int64
	CustomerID  int64
	CustomNotes *string
	Status      BookingStatus
	CreatedAt   time.Time
}

// IsConfirmed returns true if the booking is in the confirmed state
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// BookingService is the many-to-many association between a booking and a
// service. The (BookingID, ServiceID) pair is the primary key, so duplicate
// associations are impossible by construction.
type BookingService struct {
	BookingID int64
	ServiceID int64
}

// AdminBookingRow is the denormalized view of a booking shown on the admin
// dashboard: booking fields joined with slot times and customer contacts.
type AdminBookingRow struct {
	ID            int64
	Status        BookingStatus
	CustomNotes   *string
	CreatedAt     time.Time
	SlotStartAt   time.Time
	SlotEndAt     time.Time
	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
}
