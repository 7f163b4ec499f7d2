package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCatalog keeps offering snapshots in memory with the same atomic
// adjust semantics as the SQL queries: the capacity check and the write
// happen under one lock.
type fakeCatalog struct {
	mu          sync.Mutex
	offerings   map[uuid.UUID]*entity.OfferingSnapshot
	totals      map[uuid.UUID]int
	failRelease error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		offerings: make(map[uuid.UUID]*entity.OfferingSnapshot),
		totals:    make(map[uuid.UUID]int),
	}
}

func (c *fakeCatalog) add(snapshot entity.OfferingSnapshot, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := snapshot
	c.offerings[snapshot.ID] = &copied
	c.totals[snapshot.ID] = total
}

func (c *fakeCatalog) remaining(id uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offerings[id].CapacityRemaining
}

func (c *fakeCatalog) Fetch(_ context.Context, kind entity.OfferingKind, id uuid.UUID) (*entity.OfferingSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	offering, ok := c.offerings[id]
	if !ok || offering.Kind != kind || !offering.IsActive {
		return nil, entity.ErrOfferingNotFound
	}

	copied := *offering
	return &copied, nil
}

func (c *fakeCatalog) AdjustCapacity(_ context.Context, kind entity.OfferingKind, id uuid.UUID, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if delta > 0 && c.failRelease != nil {
		return c.failRelease
	}

	offering, ok := c.offerings[id]
	if !ok || offering.Kind != kind {
		return entity.ErrOfferingNotFound
	}
	if delta < 0 && !offering.IsActive {
		return entity.ErrOfferingNotFound
	}

	next := offering.CapacityRemaining + delta
	if next < 0 {
		return entity.ErrInsufficientCapacity
	}
	if next > c.totals[id] {
		next = c.totals[id]
	}

	offering.CapacityRemaining = next
	return nil
}

// fakeLedger is an in-memory booking store enforcing the same transition
// rules as the SQL ledger.
type fakeLedger struct {
	mu         sync.Mutex
	bookings   map[uuid.UUID]*entity.Booking
	failInsert error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (l *fakeLedger) Insert(_ context.Context, booking *entity.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failInsert != nil {
		return l.failInsert
	}

	booking.ID = uuid.New()
	booking.Status = entity.BookingStatusPending
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	copied := *booking
	l.bookings[booking.ID] = &copied
	return nil
}

func (l *fakeLedger) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[id]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (l *fakeLedger) FindByCustomerID(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*entity.Booking
	for _, booking := range l.bookings {
		if booking.CustomerID == customerID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (l *fakeLedger) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	bookings, _ := l.FindByCustomerID(ctx, customerID, 0, 0)
	return int64(len(bookings)), nil
}

func (l *fakeLedger) FindByProviderID(_ context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*entity.Booking
	for _, booking := range l.bookings {
		if booking.ProviderID == providerID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (l *fakeLedger) CountByProviderID(ctx context.Context, providerID uuid.UUID) (int64, error) {
	bookings, _ := l.FindByProviderID(ctx, providerID, 0, 0)
	return int64(len(bookings)), nil
}

func (l *fakeLedger) UpdateStatus(_ context.Context, id uuid.UUID, newStatus entity.BookingStatus, reason *string) (*entity.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[id]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s",
			entity.ErrInvalidTransition, booking.Status, newStatus)
	}

	booking.Status = newStatus
	booking.UpdatedAt = time.Now()
	if newStatus == entity.BookingStatusCancelled {
		booking.CancellationReason = reason
		now := time.Now()
		booking.CancelledAt = &now
	}

	copied := *booking
	return &copied, nil
}

func newTestBookingService(catalog *fakeCatalog, ledger *fakeLedger) BookingService {
	log := zap.NewNop()
	return NewBookingService(catalog, ledger, NewAvailabilityCoordinator(catalog, log), NewPricingEngine(), log)
}

func seedRide(catalog *fakeCatalog, providerID uuid.UUID, price string, capacity int) uuid.UUID {
	id := uuid.New()
	catalog.add(entity.OfferingSnapshot{
		Kind:              entity.KindRide,
		ID:                id,
		ProviderID:        providerID,
		UnitPrice:         decimal.RequireFromString(price),
		CapacityRemaining: capacity,
		IsActive:          true,
	}, capacity)
	return id
}

func TestCreateBookingRide(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	providerID := uuid.New()
	customerID := uuid.New()
	rideID := seedRide(catalog, providerID, "25.50", 4)

	booking, err := service.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     3,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "76.50", booking.TotalPrice)
	assert.Equal(t, "25.50", booking.UnitPrice)
	assert.Equal(t, 3, booking.Quantity)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, 1, catalog.remaining(rideID))
}

func TestCreateBookingLodgingBillsNights(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	lodgingID := uuid.New()
	catalog.add(entity.OfferingSnapshot{
		Kind:              entity.KindLodging,
		ID:                lodgingID,
		ProviderID:        uuid.New(),
		UnitPrice:         decimal.RequireFromString("1000.00"),
		CapacityRemaining: 5,
		IsActive:          true,
	}, 5)

	booking, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "lodging",
		OfferingID:   lodgingID.String(),
		CheckIn:      "2026-03-10",
		CheckOut:     "2026-03-13",
		ContactInfo:  "guest@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Quantity)
	assert.Equal(t, "3000.00", booking.TotalPrice)
	assert.Equal(t, 2, catalog.remaining(lodgingID))
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	rideID := seedRide(catalog, uuid.New(), "10.00", 2)

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     3,
		ContactInfo:  "rider@example.com",
	})
	assert.ErrorIs(t, err, entity.ErrInsufficientCapacity)
	assert.Equal(t, 2, catalog.remaining(rideID))
}

func TestCreateBookingInactiveOffering(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	rideID := uuid.New()
	catalog.add(entity.OfferingSnapshot{
		Kind:              entity.KindRide,
		ID:                rideID,
		ProviderID:        uuid.New(),
		UnitPrice:         decimal.RequireFromString("10.00"),
		CapacityRemaining: 5,
		IsActive:          false,
	}, 5)

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     1,
		ContactInfo:  "rider@example.com",
	})
	assert.ErrorIs(t, err, entity.ErrOfferingNotFound)
}

func TestCreateBookingInsertFailureReleasesCapacity(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	ledger.failInsert = errors.New("connection reset")
	service := newTestBookingService(catalog, ledger)

	rideID := seedRide(catalog, uuid.New(), "10.00", 4)

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     2,
		ContactInfo:  "rider@example.com",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrCompensationFailed)
	assert.Equal(t, 4, catalog.remaining(rideID))
}

func TestCreateBookingCompensationFailure(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	rideID := seedRide(catalog, uuid.New(), "10.00", 4)

	// Reserve succeeds, then both the insert and the compensating release fail.
	ledger.failInsert = errors.New("connection reset")
	catalog.failRelease = errors.New("connection reset")

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     2,
		ContactInfo:  "rider@example.com",
	})
	assert.ErrorIs(t, err, entity.ErrCompensationFailed)

	// The reservation is stuck until reconciled.
	assert.Equal(t, 2, catalog.remaining(rideID))
}

func TestCancelBookingRestoresCapacityOnce(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	customerID := uuid.New()
	rideID := seedRide(catalog, uuid.New(), "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     3,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 1, catalog.remaining(rideID))

	bookingID := uuid.MustParse(booking.ID)

	cancelled, err := service.CancelBooking(context.Background(), customerID, bookingID, "change of plans")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 4, catalog.remaining(rideID))

	// Second cancel is rejected before any release happens.
	_, err = service.CancelBooking(context.Background(), customerID, bookingID, "again")
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	assert.Equal(t, 4, catalog.remaining(rideID))
}

func TestCancelBookingRequiresCustomer(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	customerID := uuid.New()
	rideID := seedRide(catalog, uuid.New(), "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     1,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)

	_, err = service.CancelBooking(context.Background(), uuid.New(), uuid.MustParse(booking.ID), "")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
	assert.Equal(t, 3, catalog.remaining(rideID))
}

func TestUpdateBookingStatusProviderFlow(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	providerID := uuid.New()
	customerID := uuid.New()
	rideID := seedRide(catalog, providerID, "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     2,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(booking.ID)

	// Only the provider may confirm.
	_, err = service.UpdateBookingStatus(context.Background(), customerID, bookingID, entity.BookingStatusConfirmed)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	confirmed, err := service.UpdateBookingStatus(context.Background(), providerID, bookingID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	// Completing does not touch capacity.
	completed, err := service.UpdateBookingStatus(context.Background(), providerID, bookingID, entity.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, completed.Status)
	assert.Equal(t, 2, catalog.remaining(rideID))

	// Terminal state rejects further changes.
	_, err = service.UpdateBookingStatus(context.Background(), providerID, bookingID, entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateBookingStatusProviderCancelReleases(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	providerID := uuid.New()
	rideID := seedRide(catalog, providerID, "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     3,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 1, catalog.remaining(rideID))

	cancelled, err := service.UpdateBookingStatus(context.Background(), providerID, uuid.MustParse(booking.ID), entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 4, catalog.remaining(rideID))
}

func TestUpdateBookingStatusNoShowKeepsCapacity(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	providerID := uuid.New()
	rideID := seedRide(catalog, providerID, "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     2,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(booking.ID)

	_, err = service.UpdateBookingStatus(context.Background(), providerID, bookingID, entity.BookingStatusConfirmed)
	require.NoError(t, err)

	noShow, err := service.UpdateBookingStatus(context.Background(), providerID, bookingID, entity.BookingStatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusNoShow, noShow.Status)
	assert.Equal(t, 2, catalog.remaining(rideID))
}

func TestGetBookingVisibleToPartiesOnly(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	providerID := uuid.New()
	customerID := uuid.New()
	rideID := seedRide(catalog, providerID, "10.00", 4)

	booking, err := service.CreateBooking(context.Background(), customerID, &request.CreateBookingRequest{
		OfferingKind: "ride",
		OfferingID:   rideID.String(),
		Quantity:     1,
		ContactInfo:  "rider@example.com",
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(booking.ID)

	_, err = service.GetBooking(context.Background(), customerID, bookingID)
	assert.NoError(t, err)

	_, err = service.GetBooking(context.Background(), providerID, bookingID)
	assert.NoError(t, err)

	_, err = service.GetBooking(context.Background(), uuid.New(), bookingID)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestCreateBookingConcurrentNeverOverbooks(t *testing.T) {
	catalog := newFakeCatalog()
	ledger := newFakeLedger()
	service := newTestBookingService(catalog, ledger)

	const capacity = 10
	const attempts = 40

	rideID := seedRide(catalog, uuid.New(), "15.00", capacity)

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
				OfferingKind: "ride",
				OfferingID:   rideID.String(),
				Quantity:     1,
				ContactInfo:  "rider@example.com",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, entity.ErrInsufficientCapacity):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, rejected)
	assert.Equal(t, 0, catalog.remaining(rideID))
}
