package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ride struct {
	Base
	DriverID       uuid.UUID       `db:"driver_id"`
	Origin         string          `db:"origin"`
	Destination    string          `db:"destination"`
	DepartureAt    time.Time       `db:"departure_at"`
	PricePerSeat   decimal.Decimal `db:"price_per_seat"`
	SeatsTotal     int             `db:"seats_total"`
	SeatsRemaining int             `db:"seats_remaining"`
	IsActive       bool            `db:"is_active"`
}

func (r *Ride) Snapshot() *OfferingSnapshot {
	return &OfferingSnapshot{
		Kind:              KindRide,
		ID:                r.ID,
		ProviderID:        r.DriverID,
		UnitPrice:         r.PricePerSeat,
		CapacityRemaining: r.SeatsRemaining,
		IsActive:          r.IsActive,
	}
}
