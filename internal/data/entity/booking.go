package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// bookingTransitions is the full transition table. Statuses not present as
// keys are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	_, ok := bookingTransitions[s]
	return s.Valid() && !ok
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	Base
	Reference          string          `db:"reference"`
	CustomerID         uuid.UUID       `db:"customer_id"`
	ProviderID         uuid.UUID       `db:"provider_id"`
	OfferingKind       OfferingKind    `db:"offering_kind"`
	OfferingID         uuid.UUID       `db:"offering_id"`
	Quantity           int             `db:"quantity"`
	CheckIn            *time.Time      `db:"check_in"`
	CheckOut           *time.Time      `db:"check_out"`
	UnitPriceAtBooking decimal.Decimal `db:"unit_price_at_booking"`
	TotalPrice         decimal.Decimal `db:"total_price"`
	ContactInfo        string          `db:"contact_info"`
	Status             BookingStatus   `db:"status"`
	CancellationReason *string         `db:"cancellation_reason"`
	CancelledAt        *time.Time      `db:"cancelled_at"`
}
