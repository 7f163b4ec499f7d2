package usecase

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, requesterID, bookingID uuid.UUID, reason string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, requesterID, bookingID uuid.UUID, newStatus entity.BookingStatus) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*response.BookingResponse, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	catalog      repository.OfferingCatalog
	ledger       repository.BookingRepository
	availability *AvailabilityCoordinator
	pricing      *PricingEngine
	log          *zap.Logger
}

func NewBookingService(
	catalog repository.OfferingCatalog,
	ledger repository.BookingRepository,
	availability *AvailabilityCoordinator,
	pricing *PricingEngine,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		catalog:      catalog,
		ledger:       ledger,
		availability: availability,
		pricing:      pricing,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	kind, err := entity.ParseOfferingKind(req.OfferingKind)
	if err != nil {
		return nil, err
	}

	offeringID, err := uuid.Parse(req.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid offering ID %s", entity.ErrValidation, req.OfferingID)
	}

	priceReq, err := buildPriceRequest(kind, req)
	if err != nil {
		return nil, err
	}

	offering, err := s.catalog.Fetch(ctx, kind, offeringID)
	if err != nil {
		return nil, err
	}

	quantity, totalPrice, err := s.pricing.ComputeTotal(offering, priceReq)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check only. The atomic adjust below is the real
	// anti-overbooking guard.
	if quantity > offering.CapacityRemaining {
		return nil, entity.ErrInsufficientCapacity
	}

	// Reserve before persisting: if the insert below fails we release, but a
	// booking row can never exist without its capacity having been consumed.
	if err := s.availability.Reserve(ctx, kind, offeringID, quantity); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Reference:          utils.GenerateBookingReference(),
		CustomerID:         customerID,
		ProviderID:         offering.ProviderID,
		OfferingKind:       kind,
		OfferingID:         offeringID,
		Quantity:           quantity,
		CheckIn:            priceReq.CheckIn,
		CheckOut:           priceReq.CheckOut,
		UnitPriceAtBooking: offering.UnitPrice,
		TotalPrice:         totalPrice,
		ContactInfo:        req.ContactInfo,
	}

	if err := s.ledger.Insert(ctx, booking); err != nil {
		s.log.Error("Failed to insert booking, releasing reservation",
			zap.Error(err),
			zap.String("offering_id", offeringID.String()),
			zap.Int("quantity", quantity),
		)

		if relErr := s.availability.Release(ctx, kind, offeringID, quantity); relErr != nil {
			s.log.Error("COMPENSATION FAILED: reserved capacity is stuck and needs manual reconciliation",
				zap.Error(relErr),
				zap.String("offering_kind", string(kind)),
				zap.String("offering_id", offeringID.String()),
				zap.Int("quantity", quantity),
			)
			return nil, fmt.Errorf("%w: insert failed (%v), release failed (%v)", entity.ErrCompensationFailed, err, relErr)
		}

		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("customer_id", customerID.String()),
		zap.String("offering_kind", string(kind)),
		zap.String("offering_id", offeringID.String()),
		zap.Int("quantity", quantity),
		zap.String("total_price", totalPrice.StringFixed(2)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, requesterID, bookingID uuid.UUID, reason string) (*response.BookingResponse, error) {
	booking, err := s.ledger.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Customers cancel through this flow; providers cancel through
	// UpdateBookingStatus. Denial carries no detail about the booking.
	if booking.CustomerID != requesterID {
		return nil, entity.ErrUnauthorized
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}

	// Status first, release second: a crash in between leaves a correctly
	// cancelled booking with the release still owed, never a double release.
	updated, err := s.ledger.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled, reasonPtr)
	if err != nil {
		return nil, err
	}

	if err := s.availability.Release(ctx, booking.OfferingKind, booking.OfferingID, booking.Quantity); err != nil {
		s.log.Error("Failed to release capacity for cancelled booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("offering_id", booking.OfferingID.String()),
			zap.Int("quantity", booking.Quantity),
		)
		return nil, fmt.Errorf("release capacity for booking %s: %w", bookingID.String(), err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("reference", booking.Reference),
		zap.String("requester_id", requesterID.String()),
	)

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, requesterID, bookingID uuid.UUID, newStatus entity.BookingStatus) (*response.BookingResponse, error) {
	booking, err := s.ledger.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.ProviderID != requesterID {
		return nil, entity.ErrUnauthorized
	}

	updated, err := s.ledger.UpdateStatus(ctx, bookingID, newStatus, nil)
	if err != nil {
		return nil, err
	}

	// Provider-initiated cancellation restores capacity exactly like the
	// customer flow; quantity comes from the booking's own stored value.
	if newStatus == entity.BookingStatusCancelled {
		if err := s.availability.Release(ctx, booking.OfferingKind, booking.OfferingID, booking.Quantity); err != nil {
			s.log.Error("Failed to release capacity for provider-cancelled booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.Int("quantity", booking.Quantity),
			)
			return nil, fmt.Errorf("release capacity for booking %s: %w", bookingID.String(), err)
		}
	}

	s.log.Info("Booking status updated by provider",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(newStatus)),
		zap.String("provider_id", requesterID.String()),
	)

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.ledger.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != requesterID && booking.ProviderID != requesterID {
		return nil, entity.ErrUnauthorized
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.ledger.FindByCustomerID(ctx, customerID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}

	total, err := s.ledger.CountByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("count customer bookings: %w", err)
	}

	return paginateBookings(bookings, req, total), nil
}

func (s *bookingService) ListByProvider(ctx context.Context, providerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.ledger.FindByProviderID(ctx, providerID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list provider bookings: %w", err)
	}

	total, err := s.ledger.CountByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("count provider bookings: %w", err)
	}

	return paginateBookings(bookings, req, total), nil
}

// buildPriceRequest validates the kind-specific request parameters.
func buildPriceRequest(kind entity.OfferingKind, req *request.CreateBookingRequest) (PriceRequest, error) {
	switch kind {
	case entity.KindRide, entity.KindEvent:
		if req.Quantity < 1 {
			return PriceRequest{}, fmt.Errorf("%w: quantity must be at least 1", entity.ErrValidation)
		}
		return PriceRequest{Quantity: req.Quantity}, nil

	case entity.KindLodging:
		checkIn, err := utils.ParseDate(req.CheckIn)
		if err != nil {
			return PriceRequest{}, fmt.Errorf("%w: invalid check-in date", entity.ErrValidation)
		}
		checkOut, err := utils.ParseDate(req.CheckOut)
		if err != nil {
			return PriceRequest{}, fmt.Errorf("%w: invalid check-out date", entity.ErrValidation)
		}
		return PriceRequest{CheckIn: checkIn, CheckOut: checkOut}, nil
	}

	return PriceRequest{}, fmt.Errorf("%w: unknown offering kind %q", entity.ErrValidation, kind)
}

func paginateBookings(bookings []*entity.Booking, req *request.PaginatedRequest, total int64) *response.PaginatedResponse[response.BookingResponse] {
	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = response.BookingToResponse(booking)
	}
	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total)
}
