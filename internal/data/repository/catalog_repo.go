package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferingCatalog presents the three offering kinds behind one capability
// interface: read a price/capacity snapshot, atomically adjust capacity.
// An inactive offering is reported as not found; booking code never sees it.
type OfferingCatalog interface {
	Fetch(ctx context.Context, kind entity.OfferingKind, id uuid.UUID) (*entity.OfferingSnapshot, error)
	AdjustCapacity(ctx context.Context, kind entity.OfferingKind, id uuid.UUID, delta int) error
}

type offeringCatalog struct {
	rides    RideRepository
	lodgings LodgingRepository
	events   EventRepository
	log      *zap.Logger
}

func NewOfferingCatalog(rides RideRepository, lodgings LodgingRepository, events EventRepository, log *zap.Logger) OfferingCatalog {
	return &offeringCatalog{
		rides:    rides,
		lodgings: lodgings,
		events:   events,
		log:      log.With(zap.String("repository", "offering_catalog")),
	}
}

func (c *offeringCatalog) Fetch(ctx context.Context, kind entity.OfferingKind, id uuid.UUID) (*entity.OfferingSnapshot, error) {
	var (
		snapshot *entity.OfferingSnapshot
		err      error
	)

	switch kind {
	case entity.KindRide:
		snapshot, err = c.rides.FetchSnapshot(ctx, id)
	case entity.KindLodging:
		snapshot, err = c.lodgings.FetchSnapshot(ctx, id)
	case entity.KindEvent:
		snapshot, err = c.events.FetchSnapshot(ctx, id)
	default:
		return nil, fmt.Errorf("%w: unknown offering kind %q", entity.ErrValidation, kind)
	}

	if err != nil {
		return nil, err
	}

	if !snapshot.IsActive {
		return nil, entity.ErrOfferingNotFound
	}

	return snapshot, nil
}

func (c *offeringCatalog) AdjustCapacity(ctx context.Context, kind entity.OfferingKind, id uuid.UUID, delta int) error {
	switch kind {
	case entity.KindRide:
		return c.rides.AdjustCapacity(ctx, id, delta)
	case entity.KindLodging:
		return c.lodgings.AdjustCapacity(ctx, id, delta)
	case entity.KindEvent:
		return c.events.AdjustCapacity(ctx, id, delta)
	default:
		return fmt.Errorf("%w: unknown offering kind %q", entity.ErrValidation, kind)
	}
}
