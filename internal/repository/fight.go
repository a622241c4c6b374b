package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Fight defines the interface for fight-card persistence. Card rows are stored
// one fighter per row; the fight service folds pairs into domain.Fight views.
type Fight interface {
	// GetFightState returns the fights-table row (winner, flags) without corners.
	GetFightState(ctx context.Context, id domain.FightID) (*domain.Fight, error)
	ListEventFightStates(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error)
	GetFightEntries(ctx context.Context, id domain.FightID) ([]domain.FightCardEntry, error)
	ListEventEntries(ctx context.Context, eventID domain.EventID) ([]domain.FightCardEntry, error)
	// SetFightResult records or clears the winner. A nil winner clears the
	// result and resets is_completed.
	SetFightResult(ctx context.Context, id domain.FightID, winner *domain.FighterID) error
	CancelFight(ctx context.Context, id domain.FightID) error
}
