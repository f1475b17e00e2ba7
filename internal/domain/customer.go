package domain

import "time"

// Customer is a contact identity built from the public intake form.
// Phone and email are both optional; identity resolution is a best-effort
// OR-match over the two (see the customers service), so neither field is a
// unique key and two customers may legitimately share neither.
type Customer struct {
	ID        int64
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContact returns true if at least one contact channel is known.
// The schema does not enforce this; the booking validation does.
func (c *Customer) HasContact() bool {
	return (c.Phone != nil && *c.Phone != "") || (c.Email != nil && *c.Email != "")
}
