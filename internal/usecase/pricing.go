package usecase

import (
	"fmt"
	"math"
	"time"

	"travel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// PriceRequest carries the caller-supplied booking parameters the pricing
// engine works from. Quantity is seats or tickets; the date range is only
// meaningful for lodging, where the billed quantity is the night count.
type PriceRequest struct {
	Quantity int
	CheckIn  *time.Time
	CheckOut *time.Time
}

// PricingEngine computes deterministic totals. Pure: no I/O, no side
// effects. All arithmetic is decimal, rounded once to the configured
// precision; float math never touches a price.
type PricingEngine struct {
	precision int32
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{precision: 2}
}

// ComputeTotal returns the billed quantity and the total price for the
// offering snapshot. For rides and events the quantity is taken from the
// request; for lodging it is the number of nights derived from the range.
func (e *PricingEngine) ComputeTotal(offering *entity.OfferingSnapshot, req PriceRequest) (int, decimal.Decimal, error) {
	var quantity int

	switch offering.Kind {
	case entity.KindRide, entity.KindEvent:
		if req.Quantity < 1 {
			return 0, decimal.Zero, fmt.Errorf("%w: quantity must be at least 1", entity.ErrValidation)
		}
		quantity = req.Quantity

	case entity.KindLodging:
		nights, err := e.Nights(req.CheckIn, req.CheckOut)
		if err != nil {
			return 0, decimal.Zero, err
		}
		quantity = nights

	default:
		return 0, decimal.Zero, fmt.Errorf("%w: unknown offering kind %q", entity.ErrValidation, offering.Kind)
	}

	total := offering.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(e.precision)
	return quantity, total, nil
}

// Nights counts billable nights as ceil((checkOut - checkIn) / 1 day).
// Both dates are required and the range must be strictly positive.
func (e *PricingEngine) Nights(checkIn, checkOut *time.Time) (int, error) {
	if checkIn == nil || checkOut == nil {
		return 0, fmt.Errorf("%w: check-in and check-out dates are required", entity.ErrValidation)
	}
	if !checkOut.After(*checkIn) {
		return 0, fmt.Errorf("%w: check-out must be after check-in", entity.ErrValidation)
	}

	nights := int(math.Ceil(checkOut.Sub(*checkIn).Hours() / 24))
	return nights, nil
}
