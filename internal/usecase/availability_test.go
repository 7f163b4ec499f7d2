package usecase

import (
	"context"
	"testing"

	"travel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReserveAndRelease(t *testing.T) {
	catalog := newFakeCatalog()
	coordinator := NewAvailabilityCoordinator(catalog, zap.NewNop())

	rideID := seedRide(catalog, uuid.New(), "10.00", 5)

	require.NoError(t, coordinator.Reserve(context.Background(), entity.KindRide, rideID, 3))
	assert.Equal(t, 2, catalog.remaining(rideID))

	require.NoError(t, coordinator.Release(context.Background(), entity.KindRide, rideID, 3))
	assert.Equal(t, 5, catalog.remaining(rideID))
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	catalog := newFakeCatalog()
	coordinator := NewAvailabilityCoordinator(catalog, zap.NewNop())

	rideID := seedRide(catalog, uuid.New(), "10.00", 5)

	assert.ErrorIs(t, coordinator.Reserve(context.Background(), entity.KindRide, rideID, 0), entity.ErrValidation)
	assert.ErrorIs(t, coordinator.Release(context.Background(), entity.KindRide, rideID, -1), entity.ErrValidation)
	assert.Equal(t, 5, catalog.remaining(rideID))
}

func TestReserveBeyondCapacity(t *testing.T) {
	catalog := newFakeCatalog()
	coordinator := NewAvailabilityCoordinator(catalog, zap.NewNop())

	rideID := seedRide(catalog, uuid.New(), "10.00", 2)

	assert.ErrorIs(t, coordinator.Reserve(context.Background(), entity.KindRide, rideID, 3), entity.ErrInsufficientCapacity)
	assert.Equal(t, 2, catalog.remaining(rideID))
}

func TestReleaseCappedAtTotal(t *testing.T) {
	catalog := newFakeCatalog()
	coordinator := NewAvailabilityCoordinator(catalog, zap.NewNop())

	rideID := uuid.New()
	catalog.add(entity.OfferingSnapshot{
		Kind:              entity.KindRide,
		ID:                rideID,
		ProviderID:        uuid.New(),
		UnitPrice:         decimal.RequireFromString("10.00"),
		CapacityRemaining: 4,
		IsActive:          true,
	}, 5)

	require.NoError(t, coordinator.Release(context.Background(), entity.KindRide, rideID, 3))
	assert.Equal(t, 5, catalog.remaining(rideID))
}

func TestReleaseOnInactiveOffering(t *testing.T) {
	catalog := newFakeCatalog()
	coordinator := NewAvailabilityCoordinator(catalog, zap.NewNop())

	rideID := uuid.New()
	catalog.add(entity.OfferingSnapshot{
		Kind:              entity.KindRide,
		ID:                rideID,
		ProviderID:        uuid.New(),
		UnitPrice:         decimal.RequireFromString("10.00"),
		CapacityRemaining: 2,
		IsActive:          false,
	}, 5)

	// Cancelling a booking against a deactivated offering still restores
	// capacity; only reservations are blocked.
	require.NoError(t, coordinator.Release(context.Background(), entity.KindRide, rideID, 1))
	assert.Equal(t, 3, catalog.remaining(rideID))

	assert.ErrorIs(t, coordinator.Reserve(context.Background(), entity.KindRide, rideID, 1), entity.ErrOfferingNotFound)
}
