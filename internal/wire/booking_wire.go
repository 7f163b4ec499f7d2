package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every booking route requires an authenticated requester: the service
	// layer gates each booking to its customer or provider.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - View one booking (customer or provider)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/cancel - Customer cancellation
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// PUT /api/bookings/{id}/status - Provider-side status changes
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)

		// GET /api/user/bookings - Booking history as customer
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/provider/bookings - Bookings against the caller's offerings
		r.Get("/api/provider/bookings", bookingHandler.GetProviderBookings)
	})
}
