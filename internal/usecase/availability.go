package usecase

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityCoordinator is the only path to an offering's capacity field.
// Reserve consumes capacity at booking creation; Release restores it at
// cancellation. The at-most-once guarantee for Release comes from the
// booking ledger's state machine: a second cancel is rejected before any
// release is attempted.
type AvailabilityCoordinator struct {
	catalog repository.OfferingCatalog
	log     *zap.Logger
}

func NewAvailabilityCoordinator(catalog repository.OfferingCatalog, log *zap.Logger) *AvailabilityCoordinator {
	return &AvailabilityCoordinator{
		catalog: catalog,
		log:     log.With(zap.String("service", "availability")),
	}
}

func (c *AvailabilityCoordinator) Reserve(ctx context.Context, kind entity.OfferingKind, offeringID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: reserve quantity must be at least 1", entity.ErrValidation)
	}

	if err := c.catalog.AdjustCapacity(ctx, kind, offeringID, -quantity); err != nil {
		return err
	}

	c.log.Info("Capacity reserved",
		zap.String("offering_kind", string(kind)),
		zap.String("offering_id", offeringID.String()),
		zap.Int("quantity", quantity),
	)

	return nil
}

func (c *AvailabilityCoordinator) Release(ctx context.Context, kind entity.OfferingKind, offeringID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: release quantity must be at least 1", entity.ErrValidation)
	}

	if err := c.catalog.AdjustCapacity(ctx, kind, offeringID, quantity); err != nil {
		return err
	}

	c.log.Info("Capacity released",
		zap.String("offering_kind", string(kind)),
		zap.String("offering_id", offeringID.String()),
		zap.Int("quantity", quantity),
	)

	return nil
}
