package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OfferingService owns offering creation and listing. Capacity is set once
// here; every later mutation goes through the availability coordinator.
type OfferingService interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req *request.CreateRideRequest) (*response.RideResponse, error)
	CreateLodging(ctx context.Context, hostID uuid.UUID, req *request.CreateLodgingRequest) (*response.LodgingResponse, error)
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req *request.CreateEventRequest) (*response.EventResponse, error)

	ListRides(ctx context.Context, req *request.PaginatedRequest) ([]*response.RideResponse, error)
	ListLodgings(ctx context.Context, req *request.PaginatedRequest) ([]*response.LodgingResponse, error)
	ListEvents(ctx context.Context, req *request.PaginatedRequest) ([]*response.EventResponse, error)

	GetRide(ctx context.Context, id uuid.UUID) (*response.RideResponse, error)
	GetLodging(ctx context.Context, id uuid.UUID) (*response.LodgingResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*response.EventResponse, error)

	Deactivate(ctx context.Context, providerID uuid.UUID, kind entity.OfferingKind, id uuid.UUID) error
}

type offeringService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOfferingService(repo *repository.Repository, log *zap.Logger) OfferingService {
	return &offeringService{
		repo: repo,
		log:  log.With(zap.String("service", "offering")),
	}
}

func (s *offeringService) CreateRide(ctx context.Context, driverID uuid.UUID, req *request.CreateRideRequest) (*response.RideResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	price, err := parsePrice(req.PricePerSeat)
	if err != nil {
		return nil, err
	}

	departureAt, err := time.Parse(time.RFC3339, req.DepartureAt)
	if err != nil {
		return nil, fmt.Errorf("%w: departure_at must be RFC3339", entity.ErrValidation)
	}

	now := time.Now()
	ride := &entity.Ride{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		DriverID:       driverID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureAt:    departureAt,
		PricePerSeat:   price,
		SeatsTotal:     req.Seats,
		SeatsRemaining: req.Seats,
		IsActive:       true,
	}

	if err := s.repo.Ride.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.log.Info("Ride created",
		zap.String("ride_id", ride.ID.String()),
		zap.String("driver_id", driverID.String()),
		zap.Int("seats", req.Seats),
	)

	resp := response.RideToResponse(ride)
	return &resp, nil
}

func (s *offeringService) CreateLodging(ctx context.Context, hostID uuid.UUID, req *request.CreateLodgingRequest) (*response.LodgingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	price, err := parsePrice(req.PricePerNight)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lodging := &entity.Lodging{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		HostID:         hostID,
		Title:          req.Title,
		City:           req.City,
		Address:        req.Address,
		PricePerNight:  price,
		UnitsTotal:     req.Units,
		UnitsRemaining: req.Units,
		IsActive:       true,
	}

	if err := s.repo.Lodging.Create(ctx, lodging); err != nil {
		return nil, err
	}

	s.log.Info("Lodging created",
		zap.String("lodging_id", lodging.ID.String()),
		zap.String("host_id", hostID.String()),
	)

	resp := response.LodgingToResponse(lodging)
	return &resp, nil
}

func (s *offeringService) CreateEvent(ctx context.Context, organizerID uuid.UUID, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	price, err := parsePrice(req.TicketPrice)
	if err != nil {
		return nil, err
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: starts_at must be RFC3339", entity.ErrValidation)
	}

	now := time.Now()
	event := &entity.Event{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OrganizerID:      organizerID,
		Title:            req.Title,
		Venue:            req.Venue,
		StartsAt:         startsAt,
		TicketPrice:      price,
		TicketsTotal:     req.Tickets,
		TicketsRemaining: req.Tickets,
		IsActive:         true,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("organizer_id", organizerID.String()),
		zap.Int("tickets", req.Tickets),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *offeringService) ListRides(ctx context.Context, req *request.PaginatedRequest) ([]*response.RideResponse, error) {
	rides, err := s.repo.Ride.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	responses := make([]*response.RideResponse, len(rides))
	for i, ride := range rides {
		resp := response.RideToResponse(ride)
		responses[i] = &resp
	}
	return responses, nil
}

func (s *offeringService) ListLodgings(ctx context.Context, req *request.PaginatedRequest) ([]*response.LodgingResponse, error) {
	lodgings, err := s.repo.Lodging.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	responses := make([]*response.LodgingResponse, len(lodgings))
	for i, lodging := range lodgings {
		resp := response.LodgingToResponse(lodging)
		responses[i] = &resp
	}
	return responses, nil
}

func (s *offeringService) ListEvents(ctx context.Context, req *request.PaginatedRequest) ([]*response.EventResponse, error) {
	events, err := s.repo.Event.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	responses := make([]*response.EventResponse, len(events))
	for i, event := range events {
		resp := response.EventToResponse(event)
		responses[i] = &resp
	}
	return responses, nil
}

func (s *offeringService) GetRide(ctx context.Context, id uuid.UUID) (*response.RideResponse, error) {
	ride, err := s.repo.Ride.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, entity.ErrOfferingNotFound
	}

	resp := response.RideToResponse(ride)
	return &resp, nil
}

func (s *offeringService) GetLodging(ctx context.Context, id uuid.UUID) (*response.LodgingResponse, error) {
	lodging, err := s.repo.Lodging.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lodging == nil {
		return nil, entity.ErrOfferingNotFound
	}

	resp := response.LodgingToResponse(lodging)
	return &resp, nil
}

func (s *offeringService) GetEvent(ctx context.Context, id uuid.UUID) (*response.EventResponse, error) {
	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, entity.ErrOfferingNotFound
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *offeringService) Deactivate(ctx context.Context, providerID uuid.UUID, kind entity.OfferingKind, id uuid.UUID) error {
	var err error
	switch kind {
	case entity.KindRide:
		err = s.repo.Ride.Deactivate(ctx, id, providerID)
	case entity.KindLodging:
		err = s.repo.Lodging.Deactivate(ctx, id, providerID)
	case entity.KindEvent:
		err = s.repo.Event.Deactivate(ctx, id, providerID)
	default:
		return fmt.Errorf("%w: unknown offering kind %q", entity.ErrValidation, kind)
	}

	if err != nil {
		return err
	}

	s.log.Info("Offering deactivated",
		zap.String("offering_kind", string(kind)),
		zap.String("offering_id", id.String()),
		zap.String("provider_id", providerID.String()),
	)

	return nil
}

func parsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid price %q", entity.ErrValidation, value)
	}
	if price.IsNegative() || price.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: price must be positive", entity.ErrValidation)
	}
	return price, nil
}
