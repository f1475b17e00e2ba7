package domain

import "time"

// Default values
const (
	DefaultMaxBookings            = 1
	DefaultServiceDurationMinutes = 60
)

// Public page limits
const (
	HomeSlotsLimit   = 30
	HomeGalleryLimit = 18
	HomePostsLimit   = 5
)

// Admin dashboard limits
const (
	AdminBookingsLimit = 100
)

// SlotLookback is how far into the past a slot may start and still be shown
// on the public page (a block that started recently is still relevant)
const SlotLookback = 2 * time.Hour
