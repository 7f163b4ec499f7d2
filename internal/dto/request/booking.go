package request

type CreateBookingRequest struct {
	OfferingKind string `json:"offering_kind" validate:"required,oneof=ride lodging event"`
	OfferingID   string `json:"offering_id" validate:"required,uuid4"`
	Quantity     int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	CheckIn      string `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut     string `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ContactInfo  string `json:"contact_info" validate:"required,max=255"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed no_show"`
}
