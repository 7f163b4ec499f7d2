package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferingKind string

const (
	KindRide    OfferingKind = "ride"
	KindLodging OfferingKind = "lodging"
	KindEvent   OfferingKind = "event"
)

func ParseOfferingKind(s string) (OfferingKind, error) {
	switch OfferingKind(s) {
	case KindRide, KindLodging, KindEvent:
		return OfferingKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown offering kind %q", ErrValidation, s)
	}
}

// OfferingSnapshot is the read view the booking core works with, regardless
// of which of the three kinds backs it.
type OfferingSnapshot struct {
	Kind              OfferingKind
	ID                uuid.UUID
	ProviderID        uuid.UUID
	UnitPrice         decimal.Decimal
	CapacityRemaining int
	IsActive          bool
}
