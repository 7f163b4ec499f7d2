package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	Reference          string               `json:"reference"`
	CustomerID         string               `json:"customer_id"`
	ProviderID         string               `json:"provider_id"`
	OfferingKind       entity.OfferingKind  `json:"offering_kind"`
	OfferingID         string               `json:"offering_id"`
	Quantity           int                  `json:"quantity"`
	CheckIn            string               `json:"check_in,omitempty"`
	CheckOut           string               `json:"check_out,omitempty"`
	UnitPrice          string               `json:"unit_price"`
	TotalPrice         string               `json:"total_price"`
	Status             entity.BookingStatus `json:"status"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 booking.ID.String(),
		Reference:          booking.Reference,
		CustomerID:         booking.CustomerID.String(),
		ProviderID:         booking.ProviderID.String(),
		OfferingKind:       booking.OfferingKind,
		OfferingID:         booking.OfferingID.String(),
		Quantity:           booking.Quantity,
		UnitPrice:          booking.UnitPriceAtBooking.StringFixed(2),
		TotalPrice:         booking.TotalPrice.StringFixed(2),
		Status:             booking.Status,
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.CheckIn != nil {
		resp.CheckIn = booking.CheckIn.Format("2006-01-02")
	}
	if booking.CheckOut != nil {
		resp.CheckOut = booking.CheckOut.Format("2006-01-02")
	}

	return resp
}
