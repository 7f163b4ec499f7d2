package request

type CreateRideRequest struct {
	Origin       string `json:"origin" validate:"required,max=100"`
	Destination  string `json:"destination" validate:"required,max=100"`
	DepartureAt  string `json:"departure_at" validate:"required"`
	PricePerSeat string `json:"price_per_seat" validate:"required"`
	Seats        int    `json:"seats" validate:"required,min=1"`
}

type CreateLodgingRequest struct {
	Title         string `json:"title" validate:"required,max=150"`
	City          string `json:"city" validate:"required,max=100"`
	Address       string `json:"address" validate:"required,max=255"`
	PricePerNight string `json:"price_per_night" validate:"required"`
	Units         int    `json:"units" validate:"required,min=1"`
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Venue       string `json:"venue" validate:"required,max=150"`
	StartsAt    string `json:"starts_at" validate:"required"`
	TicketPrice string `json:"ticket_price" validate:"required"`
	Tickets     int    `json:"tickets" validate:"required,min=1"`
}
