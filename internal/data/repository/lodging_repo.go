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

type LodgingRepository interface {
	Create(ctx context.Context, lodging *entity.Lodging) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Lodging, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Lodging, error)
	Deactivate(ctx context.Context, id, hostID uuid.UUID) error

	FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error)
	AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error
}

type lodgingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLodgingRepository(db database.PgxIface, log *zap.Logger) LodgingRepository {
	return &lodgingRepository{
		db:  db,
		log: log.With(zap.String("repository", "lodging")),
	}
}

const lodgingColumns = `id, host_id, title, city, address, price_per_night,
	units_total, units_remaining, is_active, created_at, updated_at`

func scanLodging(row pgx.Row) (*entity.Lodging, error) {
	var lodging entity.Lodging
	err := row.Scan(
		&lodging.ID,
		&lodging.HostID,
		&lodging.Title,
		&lodging.City,
		&lodging.Address,
		&lodging.PricePerNight,
		&lodging.UnitsTotal,
		&lodging.UnitsRemaining,
		&lodging.IsActive,
		&lodging.CreatedAt,
		&lodging.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lodging, nil
}

func (r *lodgingRepository) Create(ctx context.Context, lodging *entity.Lodging) error {
	query := `
		INSERT INTO lodgings (id, host_id, title, city, address, price_per_night,
		                      units_total, units_remaining, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		lodging.ID,
		lodging.HostID,
		lodging.Title,
		lodging.City,
		lodging.Address,
		lodging.PricePerNight,
		lodging.UnitsTotal,
		lodging.UnitsRemaining,
		lodging.IsActive,
		lodging.CreatedAt,
		lodging.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lodging",
			zap.Error(err),
			zap.String("host_id", lodging.HostID.String()),
		)
		return fmt.Errorf("create lodging: %w", err)
	}

	return nil
}

func (r *lodgingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error) {
	query := `SELECT ` + lodgingColumns + ` FROM lodgings WHERE id = $1`

	lodging, err := scanLodging(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lodging by ID",
			zap.Error(err),
			zap.String("lodging_id", id.String()),
		)
		return nil, fmt.Errorf("find lodging by ID %s: %w", id.String(), err)
	}

	return lodging, nil
}

func (r *lodgingRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Lodging, error) {
	query := `
		SELECT ` + lodgingColumns + `
		FROM lodgings
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active lodgings", zap.Error(err))
		return nil, fmt.Errorf("find active lodgings: %w", err)
	}
	defer rows.Close()

	var lodgings []*entity.Lodging
	for rows.Next() {
		lodging, err := scanLodging(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lodging row: %w", err)
		}
		lodgings = append(lodgings, lodging)
	}

	return lodgings, nil
}

func (r *lodgingRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Lodging, error) {
	query := `
		SELECT ` + lodgingColumns + `
		FROM lodgings
		WHERE host_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find lodgings by host",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find lodgings by host %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	var lodgings []*entity.Lodging
	for rows.Next() {
		lodging, err := scanLodging(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lodging row: %w", err)
		}
		lodgings = append(lodgings, lodging)
	}

	return lodgings, nil
}

func (r *lodgingRepository) Deactivate(ctx context.Context, id, hostID uuid.UUID) error {
	query := `UPDATE lodgings SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND host_id = $2`

	result, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		r.log.Error("Failed to deactivate lodging",
			zap.Error(err),
			zap.String("lodging_id", id.String()),
		)
		return fmt.Errorf("deactivate lodging %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrOfferingNotFound
	}

	return nil
}

func (r *lodgingRepository) FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error) {
	lodging, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lodging == nil {
		return nil, entity.ErrOfferingNotFound
	}
	return lodging.Snapshot(), nil
}

// AdjustCapacity is one conditional update, same contract as the ride
// repository: bounded between zero and units_total, reservation requires an
// active listing, release does not.
func (r *lodgingRepository) AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE lodgings
		SET units_remaining = units_remaining + $2, updated_at = NOW()
		WHERE id = $1
		  AND units_remaining + $2 >= 0
		  AND units_remaining + $2 <= units_total
		  AND ($2 > 0 OR is_active = TRUE)
	`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust lodging capacity",
			zap.Error(err),
			zap.String("lodging_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust lodging %s capacity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM lodgings WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check lodging %s exists: %w", id.String(), err)
		}
		if !exists {
			return entity.ErrOfferingNotFound
		}
		return entity.ErrInsufficientCapacity
	}

	return nil
}
