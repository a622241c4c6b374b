package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// EventWinner defines the interface for event-winner persistence
type EventWinner interface {
	// ReplaceEventWinners deletes prior winner rows for the event and inserts
	// the new set in a single transaction, keeping finalization idempotent.
	ReplaceEventWinners(ctx context.Context, eventID domain.EventID, winners []domain.EventWinner) error
	// ListEventWinners returns winner rows, optionally restricted to events in
	// the given year (zero means all-time).
	ListEventWinners(ctx context.Context, year int) ([]domain.EventWinner, error)
}
