package domain

// Service is a bookable offering. Prices are stored in cents.
// Services referenced by bookings are never deleted; deactivation only
// hides them from new bookings.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	PriceCents      int64
	IsActive        bool
}

// PriceDollars returns the price converted to dollars for display
func (s *Service) PriceDollars() float64 {
	return float64(s.PriceCents) / 100
}
