package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Offering OfferingService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	pricing := NewPricingEngine()
	availability := NewAvailabilityCoordinator(repo.Catalog, log)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Offering: NewOfferingService(repo, log),
		Booking:  NewBookingService(repo.Catalog, repo.Booking, availability, pricing, log),
	}
}
