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

// FightRepository implements the fight repository for PostgreSQL
type FightRepository struct {
	pool *pgxpool.Pool
}

// NewFightRepository creates a new FightRepository
func NewFightRepository(pool *pgxpool.Pool) repository.Fight {
	return &FightRepository{pool: pool}
}

// GetFightState retrieves the fights-table row without card entries
func (r *FightRepository) GetFightState(ctx context.Context, id domain.FightID) (*domain.Fight, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT fight_id, event_id, bout_order, is_completed, is_canceled, winner_id
		 FROM fights WHERE fight_id = $1`, int64(id))

	f, err := scanFightState(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFightNotFound
		}
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}
	return f, nil
}

// ListEventFightStates retrieves all fight rows for an event in bout order
func (r *FightRepository) ListEventFightStates(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT fight_id, event_id, bout_order, is_completed, is_canceled, winner_id
		 FROM fights WHERE event_id = $1 ORDER BY bout_order ASC`, int64(eventID))
	if err != nil {
		return nil, fmt.Errorf("failed to query fights: %w", err)
	}
	defer rows.Close()

	var fights []domain.Fight
	for rows.Next() {
		f, err := scanFightState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight: %w", err)
		}
		fights = append(fights, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fights: %w", err)
	}
	return fights, nil
}

// GetFightEntries retrieves the card rows (one per corner) for a fight
func (r *FightRepository) GetFightEntries(ctx context.Context, id domain.FightID) ([]domain.FightCardEntry, error) {
	return r.queryEntries(ctx,
		`SELECT e.fight_id, f.event_id, e.corner, e.fighter_id, e.fighter_name, COALESCE(e.record, ''), e.odds
		 FROM fight_card_entries e JOIN fights f ON f.fight_id = e.fight_id
		 WHERE e.fight_id = $1 ORDER BY e.corner DESC`, int64(id))
}

// ListEventEntries retrieves all card rows for an event
func (r *FightRepository) ListEventEntries(ctx context.Context, eventID domain.EventID) ([]domain.FightCardEntry, error) {
	return r.queryEntries(ctx,
		`SELECT e.fight_id, f.event_id, e.corner, e.fighter_id, e.fighter_name, COALESCE(e.record, ''), e.odds
		 FROM fight_card_entries e JOIN fights f ON f.fight_id = e.fight_id
		 WHERE f.event_id = $1 ORDER BY f.bout_order ASC, e.corner DESC`, int64(eventID))
}

func (r *FightRepository) queryEntries(ctx context.Context, query string, arg any) ([]domain.FightCardEntry, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query card entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.FightCardEntry
	for rows.Next() {
		var e domain.FightCardEntry
		if err := rows.Scan(&e.FightID, &e.EventID, &e.Corner, &e.FighterID, &e.FighterName, &e.Record, &e.Odds); err != nil {
			return nil, fmt.Errorf("failed to scan card entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read card entries: %w", err)
	}
	return entries, nil
}

// SetFightResult records or clears the winner of a fight
func (r *FightRepository) SetFightResult(ctx context.Context, id domain.FightID, winner *domain.FighterID) error {
	var winnerVal *int64
	if winner != nil {
		v := int64(*winner)
		winnerVal = &v
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE fights SET winner_id = $2, is_completed = ($2 IS NOT NULL) WHERE fight_id = $1`,
		int64(id), winnerVal)
	if err != nil {
		return fmt.Errorf("failed to set fight result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFightNotFound
	}
	return nil
}

// CancelFight marks a fight canceled and clears any result
func (r *FightRepository) CancelFight(ctx context.Context, id domain.FightID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE fights SET is_canceled = TRUE, is_completed = FALSE, winner_id = NULL WHERE fight_id = $1`,
		int64(id))
	if err != nil {
		return fmt.Errorf("failed to cancel fight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFightNotFound
	}
	return nil
}

func scanFightState(row pgx.Row) (*domain.Fight, error) {
	var f domain.Fight
	var winner *int64
	if err := row.Scan(&f.ID, &f.EventID, &f.BoutOrder, &f.IsCompleted, &f.IsCanceled, &winner); err != nil {
		return nil, err
	}
	if winner != nil {
		w := domain.FighterID(*winner)
		f.WinnerID = &w
	}
	return &f, nil
}
