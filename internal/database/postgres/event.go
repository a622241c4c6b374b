package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// EventRepository implements the event repository for PostgreSQL
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(pool *pgxpool.Pool) repository.Event {
	return &EventRepository{pool: pool}
}

// GetEvent retrieves a single event by ID
func (r *EventRepository) GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT event_id, name, event_date, is_complete FROM events WHERE event_id = $1`, int64(id))

	var e domain.Event
	if err := row.Scan(&e.ID, &e.Name, &e.EventDate, &e.IsComplete); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

// ListEvents retrieves all events, newest first
func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return r.listEvents(ctx,
		`SELECT event_id, name, event_date, is_complete FROM events ORDER BY event_date DESC`)
}

// ListCompletedEvents retrieves all completed events, oldest first (backfill order)
func (r *EventRepository) ListCompletedEvents(ctx context.Context) ([]domain.Event, error) {
	return r.listEvents(ctx,
		`SELECT event_id, name, event_date, is_complete FROM events WHERE is_complete ORDER BY event_date ASC`)
}

func (r *EventRepository) listEvents(ctx context.Context, query string) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.EventDate, &e.IsComplete); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
