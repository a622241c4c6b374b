package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// PredictionRepository implements the prediction repository for PostgreSQL
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(pool *pgxpool.Pool) repository.Prediction {
	return &PredictionRepository{pool: pool}
}

// UpsertPrediction inserts or replaces the pick for a (fight, user) pair.
// Races between concurrent submissions resolve on the primary key; last
// writer wins.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, p *domain.Prediction) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO predictions (fight_id, user_id, fighter_id, odds)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (fight_id, user_id) DO UPDATE SET
		     fighter_id = EXCLUDED.fighter_id,
		     odds = EXCLUDED.odds,
		     created_at = NOW()`,
		int64(p.FightID), int64(p.UserID), int64(p.FighterID), p.Odds)
	if err != nil {
		return fmt.Errorf("failed to upsert prediction: %w", err)
	}
	return nil
}

// ListFightPredictions retrieves every pick on a fight
func (r *PredictionRepository) ListFightPredictions(ctx context.Context, fightID domain.FightID) ([]domain.Prediction, error) {
	return r.queryPredictions(ctx,
		`SELECT p.fight_id, f.event_id, p.user_id, p.fighter_id, p.odds, p.created_at
		 FROM predictions p JOIN fights f ON f.fight_id = p.fight_id
		 WHERE p.fight_id = $1`, int64(fightID))
}

// ListUserPredictions retrieves a user's picks, optionally scoped to one event
func (r *PredictionRepository) ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error) {
	if eventID != 0 {
		return r.queryPredictions(ctx,
			`SELECT p.fight_id, f.event_id, p.user_id, p.fighter_id, p.odds, p.created_at
			 FROM predictions p JOIN fights f ON f.fight_id = p.fight_id
			 WHERE p.user_id = $1 AND f.event_id = $2`, int64(userID), int64(eventID))
	}
	return r.queryPredictions(ctx,
		`SELECT p.fight_id, f.event_id, p.user_id, p.fighter_id, p.odds, p.created_at
		 FROM predictions p JOIN fights f ON f.fight_id = p.fight_id
		 WHERE p.user_id = $1`, int64(userID))
}

func (r *PredictionRepository) queryPredictions(ctx context.Context, query string, args ...any) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(&p.FightID, &p.EventID, &p.UserID, &p.FighterID, &p.Odds, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read predictions: %w", err)
	}
	return predictions, nil
}
