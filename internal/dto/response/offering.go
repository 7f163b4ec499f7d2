package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type RideResponse struct {
	ID             string    `json:"id"`
	DriverID       string    `json:"driver_id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureAt    time.Time `json:"departure_at"`
	PricePerSeat   string    `json:"price_per_seat"`
	SeatsTotal     int       `json:"seats_total"`
	SeatsRemaining int       `json:"seats_remaining"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type LodgingResponse struct {
	ID             string    `json:"id"`
	HostID         string    `json:"host_id"`
	Title          string    `json:"title"`
	City           string    `json:"city"`
	Address        string    `json:"address"`
	PricePerNight  string    `json:"price_per_night"`
	UnitsTotal     int       `json:"units_total"`
	UnitsRemaining int       `json:"units_remaining"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type EventResponse struct {
	ID               string    `json:"id"`
	OrganizerID      string    `json:"organizer_id"`
	Title            string    `json:"title"`
	Venue            string    `json:"venue"`
	StartsAt         time.Time `json:"starts_at"`
	TicketPrice      string    `json:"ticket_price"`
	TicketsTotal     int       `json:"tickets_total"`
	TicketsRemaining int       `json:"tickets_remaining"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// Helper converters
func RideToResponse(ride *entity.Ride) RideResponse {
	return RideResponse{
		ID:             ride.ID.String(),
		DriverID:       ride.DriverID.String(),
		Origin:         ride.Origin,
		Destination:    ride.Destination,
		DepartureAt:    ride.DepartureAt,
		PricePerSeat:   ride.PricePerSeat.StringFixed(2),
		SeatsTotal:     ride.SeatsTotal,
		SeatsRemaining: ride.SeatsRemaining,
		IsActive:       ride.IsActive,
		CreatedAt:      ride.CreatedAt,
	}
}

func LodgingToResponse(lodging *entity.Lodging) LodgingResponse {
	return LodgingResponse{
		ID:             lodging.ID.String(),
		HostID:         lodging.HostID.String(),
		Title:          lodging.Title,
		City:           lodging.City,
		Address:        lodging.Address,
		PricePerNight:  lodging.PricePerNight.StringFixed(2),
		UnitsTotal:     lodging.UnitsTotal,
		UnitsRemaining: lodging.UnitsRemaining,
		IsActive:       lodging.IsActive,
		CreatedAt:      lodging.CreatedAt,
	}
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:               event.ID.String(),
		OrganizerID:      event.OrganizerID.String(),
		Title:            event.Title,
		Venue:            event.Venue,
		StartsAt:         event.StartsAt,
		TicketPrice:      event.TicketPrice.StringFixed(2),
		TicketsTotal:     event.TicketsTotal,
		TicketsRemaining: event.TicketsRemaining,
		IsActive:         event.IsActive,
		CreatedAt:        event.CreatedAt,
	}
}
