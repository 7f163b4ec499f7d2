package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Ride    RideRepository
	Lodging LodgingRepository
	Event   EventRepository
	Catalog OfferingCatalog
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	rides := NewRideRepository(db, log)
	lodgings := NewLodgingRepository(db, log)
	events := NewEventRepository(db, log)

	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Ride:    rides,
		Lodging: lodgings,
		Event:   events,
		Catalog: NewOfferingCatalog(rides, lodgings, events, log),
		Booking: NewBookingRepository(db, log),
	}
}
