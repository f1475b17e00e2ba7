package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasContact(t *testing.T) {
	phone := "555-0100"
	email := "dana@example.com"
	empty := ""

	assert.True(t, (&Customer{Phone: &phone}).HasContact())
	assert.True(t, (&Customer{Email: &email}).HasContact())
	assert.True(t, (&Customer{Phone: &phone, Email: &email}).HasContact())
	assert.False(t, (&Customer{}).HasContact())
	assert.False(t, (&Customer{Phone: &empty, Email: &empty}).HasContact())
}

func TestPriceDollars(t *testing.T) {
	svc := &Service{PriceCents: 4550}
	assert.InDelta(t, 45.50, svc.PriceDollars(), 0.001)

	svc.PriceCents = 0
	assert.Zero(t, svc.PriceDollars())
}
