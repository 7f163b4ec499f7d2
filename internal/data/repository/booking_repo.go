package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the booking ledger. Every status write goes through
// the transition table in the entity package; bookings are never deleted,
// cancellation is a status transition.
type BookingRepository interface {
	Insert(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByProviderID(ctx context.Context, providerID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus entity.BookingStatus, reason *string) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, customer_id, provider_id, offering_kind, offering_id,
	quantity, check_in, check_out, unit_price_at_booking, total_price, contact_info,
	status, cancellation_reason, cancelled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerID,
		&booking.ProviderID,
		&booking.OfferingKind,
		&booking.OfferingID,
		&booking.Quantity,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.UnitPriceAtBooking,
		&booking.TotalPrice,
		&booking.ContactInfo,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.Status = entity.BookingStatusPending

	query := `
		INSERT INTO bookings (id, reference, customer_id, provider_id, offering_kind, offering_id,
		                      quantity, check_in, check_out, unit_price_at_booking, total_price,
		                      contact_info, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.CustomerID,
		booking.ProviderID,
		booking.OfferingKind,
		booking.OfferingID,
		booking.Quantity,
		booking.CheckIn,
		booking.CheckOut,
		booking.UnitPriceAtBooking,
		booking.TotalPrice,
		booking.ContactInfo,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("customer_id", booking.CustomerID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findList(ctx, query, customerID, limit, offset)
}

func (r *bookingRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings by customer %s: %w", customerID.String(), err)
	}
	return count, nil
}

func (r *bookingRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE provider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findList(ctx, query, providerID, limit, offset)
}

func (r *bookingRepository) CountByProviderID(ctx context.Context, providerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE provider_id = $1`, providerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings by provider %s: %w", providerID.String(), err)
	}
	return count, nil
}

func (r *bookingRepository) findList(ctx context.Context, query string, partyID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, partyID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("party_id", partyID.String()),
		)
		return nil, fmt.Errorf("list bookings for %s: %w", partyID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// UpdateStatus validates the transition against the current row, then applies
// it with a compare-and-swap on the status column so two racing writers
// cannot both move the booking out of the same state. The losing writer gets
// ErrInvalidTransition.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus entity.BookingStatus, reason *string) (*entity.Booking, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, newStatus)
	}

	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, booking.Status, newStatus)
	}

	now := time.Now()

	var result int64
	if newStatus == entity.BookingStatusCancelled {
		query := `
			UPDATE bookings
			SET status = $3, cancellation_reason = $4, cancelled_at = $5, updated_at = $5
			WHERE id = $1 AND status = $2
		`
		tag, err := r.db.Exec(ctx, query, id, booking.Status, newStatus, reason, now)
		if err != nil {
			return nil, fmt.Errorf("update booking %s status: %w", id.String(), err)
		}
		result = tag.RowsAffected()
		booking.CancellationReason = reason
		booking.CancelledAt = &now
	} else {
		query := `
			UPDATE bookings
			SET status = $3, updated_at = $4
			WHERE id = $1 AND status = $2
		`
		tag, err := r.db.Exec(ctx, query, id, booking.Status, newStatus, now)
		if err != nil {
			return nil, fmt.Errorf("update booking %s status: %w", id.String(), err)
		}
		result = tag.RowsAffected()
	}

	if result == 0 {
		// Someone else moved the booking first; the transition we validated
		// no longer applies.
		return nil, fmt.Errorf("%w: booking %s changed concurrently", entity.ErrInvalidTransition, id.String())
	}

	booking.Status = newStatus
	booking.UpdatedAt = now

	r.log.Info("Booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("status", string(newStatus)),
	)

	return booking, nil
}
