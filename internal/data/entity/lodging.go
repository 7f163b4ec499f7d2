package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Lodging struct {
	Base
	HostID         uuid.UUID       `db:"host_id"`
	Title          string          `db:"title"`
	City           string          `db:"city"`
	Address        string          `db:"address"`
	PricePerNight  decimal.Decimal `db:"price_per_night"`
	UnitsTotal     int             `db:"units_total"`
	UnitsRemaining int             `db:"units_remaining"`
	IsActive       bool            `db:"is_active"`
}

func (l *Lodging) Snapshot() *OfferingSnapshot {
	return &OfferingSnapshot{
		Kind:              KindLodging,
		ID:                l.ID,
		ProviderID:        l.HostID,
		UnitPrice:         l.PricePerNight,
		CapacityRemaining: l.UnitsRemaining,
		IsActive:          l.IsActive,
	}
}
