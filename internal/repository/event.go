package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Event defines the interface for event persistence
type Event interface {
	GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListCompletedEvents(ctx context.Context) ([]domain.Event, error)
}
