package usecase

import (
	"testing"
	"time"

	"travel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestComputeTotalRide(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindRide,
		UnitPrice: decimal.RequireFromString("25.50"),
	}

	quantity, total, err := engine.ComputeTotal(offering, PriceRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, "76.50", total.StringFixed(2))
}

func TestComputeTotalEvent(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindEvent,
		UnitPrice: decimal.RequireFromString("120.00"),
	}

	quantity, total, err := engine.ComputeTotal(offering, PriceRequest{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, quantity)
	assert.Equal(t, "240.00", total.StringFixed(2))
}

func TestComputeTotalLodgingNights(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindLodging,
		UnitPrice: decimal.RequireFromString("1000.00"),
	}

	// Three nights across a four-day stay.
	req := PriceRequest{
		CheckIn:  date("2026-03-10"),
		CheckOut: date("2026-03-13"),
	}

	quantity, total, err := engine.ComputeTotal(offering, req)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, "3000.00", total.StringFixed(2))
}

func TestComputeTotalLodgingSingleNight(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindLodging,
		UnitPrice: decimal.RequireFromString("89.99"),
	}

	req := PriceRequest{
		CheckIn:  date("2026-03-10"),
		CheckOut: date("2026-03-11"),
	}

	quantity, total, err := engine.ComputeTotal(offering, req)
	require.NoError(t, err)
	assert.Equal(t, 1, quantity)
	assert.Equal(t, "89.99", total.StringFixed(2))
}

func TestComputeTotalQuantityZero(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindRide,
		UnitPrice: decimal.RequireFromString("10.00"),
	}

	_, _, err := engine.ComputeTotal(offering, PriceRequest{Quantity: 0})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestNightsInvalidRanges(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
	}{
		{"missing check-in", nil, date("2026-03-11")},
		{"missing check-out", date("2026-03-10"), nil},
		{"same day", date("2026-03-10"), date("2026-03-10")},
		{"reversed", date("2026-03-13"), date("2026-03-10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Nights(tt.checkIn, tt.checkOut)
			assert.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestComputeTotalRoundsToCents(t *testing.T) {
	engine := NewPricingEngine()

	offering := &entity.OfferingSnapshot{
		Kind:      entity.KindEvent,
		UnitPrice: decimal.RequireFromString("33.333"),
	}

	_, total, err := engine.ComputeTotal(offering, PriceRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "100.00", total.StringFixed(2))
}
