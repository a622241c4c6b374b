package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// ResultRepository implements the prediction-result repository for PostgreSQL
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(pool *pgxpool.Pool) repository.Result {
	return &ResultRepository{pool: pool}
}

// ReplaceFightResults atomically swaps the result set for a fight. Either the
// old rows are gone and the new rows are all present, or nothing changed.
func (r *ResultRepository) ReplaceFightResults(ctx context.Context, fightID domain.FightID, results []domain.PredictionResult) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM prediction_results WHERE fight_id = $1`, int64(fightID)); err != nil {
		return fmt.Errorf("failed to delete prior results: %w", err)
	}

	for _, res := range results {
		_, err := tx.Exec(ctx,
			`INSERT INTO prediction_results (fight_id, user_id, event_id, predicted_correctly, points)
			 VALUES ($1, $2, $3, $4, $5)`,
			int64(res.FightID), int64(res.UserID), int64(res.EventID), res.PredictedCorrectly, res.Points)
		if err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	return nil
}

// DeleteFightResults removes every result row for a fight
func (r *ResultRepository) DeleteFightResults(ctx context.Context, fightID domain.FightID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM prediction_results WHERE fight_id = $1`, int64(fightID)); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}
	return nil
}

// ListResults retrieves result rows matching the filter
func (r *ResultRepository) ListResults(ctx context.Context, filter domain.ResultFilter) ([]domain.PredictionResult, error) {
	query := strings.Builder{}
	query.WriteString(
		`SELECT fight_id, user_id, event_id, predicted_correctly, points, created_at
		 FROM prediction_results`)

	var conds []string
	var args []any
	if filter.EventID != 0 {
		args = append(args, int64(filter.EventID))
		conds = append(conds, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if filter.UserID != 0 {
		args = append(args, int64(filter.UserID))
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.Until.IsZero() {
		args = append(args, filter.Until)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	query.WriteString(" ORDER BY created_at ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []domain.PredictionResult
	for rows.Next() {
		var res domain.PredictionResult
		if err := rows.Scan(&res.FightID, &res.UserID, &res.EventID, &res.PredictedCorrectly, &res.Points, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return results, nil
}

// safeRollback rolls back a transaction and logs unexpected errors
func safeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
