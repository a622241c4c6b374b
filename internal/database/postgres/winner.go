package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// EventWinnerRepository implements the event-winner repository for PostgreSQL
type EventWinnerRepository struct {
	pool *pgxpool.Pool
}

// NewEventWinnerRepository creates a new EventWinnerRepository
func NewEventWinnerRepository(pool *pgxpool.Pool) repository.EventWinner {
	return &EventWinnerRepository{pool: pool}
}

// ReplaceEventWinners swaps the winner set for an event in one transaction.
// Prior rows are never cleared without the replacement landing with them.
func (r *EventWinnerRepository) ReplaceEventWinners(ctx context.Context, eventID domain.EventID, winners []domain.EventWinner) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM event_winners WHERE event_id = $1`, int64(eventID)); err != nil {
		return fmt.Errorf("failed to delete prior winners: %w", err)
	}

	for _, w := range winners {
		_, err := tx.Exec(ctx,
			`INSERT INTO event_winners (event_id, user_id, points) VALUES ($1, $2, $3)`,
			int64(w.EventID), int64(w.UserID), w.Points)
		if err != nil {
			return fmt.Errorf("failed to insert winner: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit winners: %w", err)
	}
	return nil
}

// ListEventWinners retrieves winner rows, optionally restricted to one year
func (r *EventWinnerRepository) ListEventWinners(ctx context.Context, year int) ([]domain.EventWinner, error) {
	var rows pgx.Rows
	var err error
	if year > 0 {
		rows, err = r.pool.Query(ctx,
			`SELECT w.event_id, w.user_id, w.points
			 FROM event_winners w JOIN events e ON e.event_id = w.event_id
			 WHERE EXTRACT(YEAR FROM e.event_date) = $1`, year)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT event_id, user_id, points FROM event_winners`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event winners: %w", err)
	}
	defer rows.Close()

	var winners []domain.EventWinner
	for rows.Next() {
		var w domain.EventWinner
		if err := rows.Scan(&w.EventID, &w.UserID, &w.Points); err != nil {
			return nil, fmt.Errorf("failed to scan event winner: %w", err)
		}
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event winners: %w", err)
	}
	return winners, nil
}
