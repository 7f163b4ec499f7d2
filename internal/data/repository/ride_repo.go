package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RideRepository interface {
	Create(ctx context.Context, ride *entity.Ride) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Ride, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*entity.Ride, error)
	Deactivate(ctx context.Context, id, driverID uuid.UUID) error

	// Capacity operations used by the offering catalog
	FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error)
	AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error
}

type rideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRideRepository(db database.PgxIface, log *zap.Logger) RideRepository {
	return &rideRepository{
		db:  db,
		log: log.With(zap.String("repository", "ride")),
	}
}

const rideColumns = `id, driver_id, origin, destination, departure_at, price_per_seat,
	seats_total, seats_remaining, is_active, created_at, updated_at`

func scanRide(row pgx.Row) (*entity.Ride, error) {
	var ride entity.Ride
	err := row.Scan(
		&ride.ID,
		&ride.DriverID,
		&ride.Origin,
		&ride.Destination,
		&ride.DepartureAt,
		&ride.PricePerSeat,
		&ride.SeatsTotal,
		&ride.SeatsRemaining,
		&ride.IsActive,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *rideRepository) Create(ctx context.Context, ride *entity.Ride) error {
	query := `
		INSERT INTO rides (id, driver_id, origin, destination, departure_at, price_per_seat,
		                   seats_total, seats_remaining, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		ride.ID,
		ride.DriverID,
		ride.Origin,
		ride.Destination,
		ride.DepartureAt,
		ride.PricePerSeat,
		ride.SeatsTotal,
		ride.SeatsRemaining,
		ride.IsActive,
		ride.CreatedAt,
		ride.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ride",
			zap.Error(err),
			zap.String("driver_id", ride.DriverID.String()),
		)
		return fmt.Errorf("create ride: %w", err)
	}

	return nil
}

func (r *rideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ride by ID",
			zap.Error(err),
			zap.String("ride_id", id.String()),
		)
		return nil, fmt.Errorf("find ride by ID %s: %w", id.String(), err)
	}

	return ride, nil
}

func (r *rideRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Ride, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE is_active = TRUE
		ORDER BY departure_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active rides", zap.Error(err))
		return nil, fmt.Errorf("find active rides: %w", err)
	}
	defer rows.Close()

	var rides []*entity.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ride row: %w", err)
		}
		rides = append(rides, ride)
	}

	return rides, nil
}

func (r *rideRepository) FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*entity.Ride, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		r.log.Error("Failed to find rides by driver",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return nil, fmt.Errorf("find rides by driver %s: %w", driverID.String(), err)
	}
	defer rows.Close()

	var rides []*entity.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ride row: %w", err)
		}
		rides = append(rides, ride)
	}

	return rides, nil
}

func (r *rideRepository) Deactivate(ctx context.Context, id, driverID uuid.UUID) error {
	query := `UPDATE rides SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND driver_id = $2`

	result, err := r.db.Exec(ctx, query, id, driverID)
	if err != nil {
		r.log.Error("Failed to deactivate ride",
			zap.Error(err),
			zap.String("ride_id", id.String()),
		)
		return fmt.Errorf("deactivate ride %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrOfferingNotFound
	}

	return nil
}

func (r *rideRepository) FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error) {
	ride, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, entity.ErrOfferingNotFound
	}
	return ride.Snapshot(), nil
}

// AdjustCapacity applies delta in a single conditional update so concurrent
// reservations against the same ride serialize on the row. Remaining seats
// can never go below zero or above the created seat count.
func (r *rideRepository) AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE rides
		SET seats_remaining = seats_remaining + $2, updated_at = NOW()
		WHERE id = $1
		  AND seats_remaining + $2 >= 0
		  AND seats_remaining + $2 <= seats_total
		  AND ($2 > 0 OR is_active = TRUE)
	`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust ride capacity",
			zap.Error(err),
			zap.String("ride_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust ride %s capacity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rides WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check ride %s exists: %w", id.String(), err)
		}
		if !exists {
			return entity.ErrOfferingNotFound
		}
		return entity.ErrInsufficientCapacity
	}

	return nil
}
