package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOffering(
	r chi.Router,
	offeringHandler *adaptor.OfferingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public browsing routes
	r.Get("/api/rides", offeringHandler.ListRides)
	r.Get("/api/rides/{id}", offeringHandler.GetRide)
	r.Get("/api/lodgings", offeringHandler.ListLodgings)
	r.Get("/api/lodgings/{id}", offeringHandler.GetLodging)
	r.Get("/api/events", offeringHandler.ListEvents)
	r.Get("/api/events/{id}", offeringHandler.GetEvent)

	// Provider routes: create and deactivate own offerings
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/rides", offeringHandler.CreateRide)
		r.Delete("/api/rides/{id}", offeringHandler.Deactivate(entity.KindRide))

		r.Post("/api/lodgings", offeringHandler.CreateLodging)
		r.Delete("/api/lodgings/{id}", offeringHandler.Deactivate(entity.KindLodging))

		r.Post("/api/events", offeringHandler.CreateEvent)
		r.Delete("/api/events/{id}", offeringHandler.Deactivate(entity.KindEvent))
	})
}
