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

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Event, error)
	FindByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error)
	Deactivate(ctx context.Context, id, organizerID uuid.UUID) error

	FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error)
	AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, organizer_id, title, venue, starts_at, ticket_price,
	tickets_total, tickets_remaining, is_active, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Title,
		&event.Venue,
		&event.StartsAt,
		&event.TicketPrice,
		&event.TicketsTotal,
		&event.TicketsRemaining,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, organizer_id, title, venue, starts_at, ticket_price,
		                    tickets_total, tickets_remaining, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.OrganizerID,
		event.Title,
		event.Venue,
		event.StartsAt,
		event.TicketPrice,
		event.TicketsTotal,
		event.TicketsRemaining,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("organizer_id", event.OrganizerID.String()),
		)
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_active = TRUE
		ORDER BY starts_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active events", zap.Error(err))
		return nil, fmt.Errorf("find active events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) FindByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, organizerID)
	if err != nil {
		r.log.Error("Failed to find events by organizer",
			zap.Error(err),
			zap.String("organizer_id", organizerID.String()),
		)
		return nil, fmt.Errorf("find events by organizer %s: %w", organizerID.String(), err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) Deactivate(ctx context.Context, id, organizerID uuid.UUID) error {
	query := `UPDATE events SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND organizer_id = $2`

	result, err := r.db.Exec(ctx, query, id, organizerID)
	if err != nil {
		r.log.Error("Failed to deactivate event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("deactivate event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrOfferingNotFound
	}

	return nil
}

func (r *eventRepository) FetchSnapshot(ctx context.Context, id uuid.UUID) (*entity.OfferingSnapshot, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, entity.ErrOfferingNotFound
	}
	return event.Snapshot(), nil
}

// AdjustCapacity is one conditional update, same contract as the other kind
// repositories.
func (r *eventRepository) AdjustCapacity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE events
		SET tickets_remaining = tickets_remaining + $2, updated_at = NOW()
		WHERE id = $1
		  AND tickets_remaining + $2 >= 0
		  AND tickets_remaining + $2 <= tickets_total
		  AND ($2 > 0 OR is_active = TRUE)
	`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust event capacity",
			zap.Error(err),
			zap.String("event_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust event %s capacity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check event %s exists: %w", id.String(), err)
		}
		if !exists {
			return entity.ErrOfferingNotFound
		}
		return entity.ErrInsufficientCapacity
	}

	return nil
}
