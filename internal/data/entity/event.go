package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	Base
	OrganizerID      uuid.UUID       `db:"organizer_id"`
	Title            string          `db:"title"`
	Venue            string          `db:"venue"`
	StartsAt         time.Time       `db:"starts_at"`
	TicketPrice      decimal.Decimal `db:"ticket_price"`
	TicketsTotal     int             `db:"tickets_total"`
	TicketsRemaining int             `db:"tickets_remaining"`
	IsActive         bool            `db:"is_active"`
}

func (e *Event) Snapshot() *OfferingSnapshot {
	return &OfferingSnapshot{
		Kind:              KindEvent,
		ID:                e.ID,
		ProviderID:        e.OrganizerID,
		UnitPrice:         e.TicketPrice,
		CapacityRemaining: e.TicketsRemaining,
		IsActive:          e.IsActive,
	}
}
