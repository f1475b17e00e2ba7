package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_Valid(t *testing.T) {
	err := validateRequest(&Request{
		SlotID:     1,
		Name:       "Dana",
		Email:      "dana@example.com",
		ServiceIDs: []int64{1},
	})
	assert.Nil(t, err)
}

func TestValidateRequest_EmailAloneSatisfiesContact(t *testing.T) {
	err := validateRequest(&Request{
		SlotID:     1,
		Name:       "Dana",
		Email:      "dana@example.com",
		ServiceIDs: []int64{1},
	})
	assert.Nil(t, err)

	err = validateRequest(&Request{
		SlotID:     1,
		Name:       "Dana",
		Phone:      "555-0100",
		ServiceIDs: []int64{1},
	})
	assert.Nil(t, err)
}

func TestValidateRequest_NegativeSlotIDIsMissing(t *testing.T) {
	err := validateRequest(&Request{
		SlotID:     -3,
		Name:       "Dana",
		Phone:      "555-0100",
		ServiceIDs: []int64{1},
	})
	require.NotNil(t, err)
	assert.Equal(t, []string{"Missing selected time block."}, err.Messages)
}

func TestDedupeServiceIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, dedupeServiceIDs([]int64{3, 1, 3, 2, 1}))
	assert.Equal(t, []int64{5}, dedupeServiceIDs([]int64{5, 5, 5}))
	assert.Empty(t, dedupeServiceIDs(nil))
}

func TestDedupeServiceIDs_KeepsUnparsableZero(t *testing.T) {
	// Ноль (непарсибельное значение формы) не отбрасывается, он должен
	// провалить проверку все-или-ничего
	assert.Equal(t, []int64{1, 0}, dedupeServiceIDs([]int64{1, 0, 1}))
}
