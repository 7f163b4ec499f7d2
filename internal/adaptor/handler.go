package adaptor

import (
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Offering *OfferingHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Offering: NewOfferingHandler(service.Offering, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
