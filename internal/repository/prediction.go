package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Prediction defines the interface for pick persistence
type Prediction interface {
	// UpsertPrediction inserts the pick or replaces an existing one for the
	// same (fight, user) pair. Concurrent submissions resolve via
	// ON CONFLICT, never by locking.
	UpsertPrediction(ctx context.Context, p *domain.Prediction) error
	ListFightPredictions(ctx context.Context, fightID domain.FightID) ([]domain.Prediction, error)
	ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error)
}

// Result defines the interface for derived prediction-result persistence
type Result interface {
	// ReplaceFightResults deletes all results for the fight and inserts the
	// given rows in a single transaction.
	ReplaceFightResults(ctx context.Context, fightID domain.FightID, results []domain.PredictionResult) error
	DeleteFightResults(ctx context.Context, fightID domain.FightID) error
	ListResults(ctx context.Context, filter domain.ResultFilter) ([]domain.PredictionResult, error)
}
