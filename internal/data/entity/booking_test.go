package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"pending to no_show", BookingStatusPending, BookingStatusNoShow, false},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to no_show", BookingStatusConfirmed, BookingStatusNoShow, true},
		{"confirmed to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"cancelled to pending", BookingStatusCancelled, BookingStatusPending, false},
		{"cancelled to confirmed", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"completed to pending", BookingStatusCompleted, BookingStatusPending, false},
		{"completed to cancelled", BookingStatusCompleted, BookingStatusCancelled, false},
		{"no_show to confirmed", BookingStatusNoShow, BookingStatusConfirmed, false},
		{"self transition pending", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusNoShow.IsTerminal())

	// unknown statuses are invalid, not terminal
	assert.False(t, BookingStatus("expired").IsTerminal())
}

func TestParseOfferingKind(t *testing.T) {
	for _, s := range []string{"ride", "lodging", "event"} {
		kind, err := ParseOfferingKind(s)
		assert.NoError(t, err)
		assert.Equal(t, OfferingKind(s), kind)
	}

	_, err := ParseOfferingKind("cruise")
	assert.ErrorIs(t, err, ErrValidation)
}
