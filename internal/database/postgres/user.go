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

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) repository.User {
	return &UserRepository{pool: pool}
}

const userColumns = `user_id, username, COALESCE(phone, ''), is_bot, playercard_id, created_at`

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, int64(id))
	return scanUser(row)
}

// GetUserByPhone retrieves a user by phone number
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
	return scanUser(row)
}

// GetUsersByIDs retrieves metadata for the given users keyed by ID
func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.User, error) {
	if len(ids) == 0 {
		return map[domain.UserID]domain.User{}, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = ANY($1)`, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make(map[domain.UserID]domain.User, len(ids))
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users[u.ID] = *u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

// ListUsers retrieves all users
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

// SetPlayercard updates a user's selected display card
func (r *UserRepository) SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET playercard_id = $2 WHERE user_id = $1`, int64(id), int64(playercardID))
	if err != nil {
		return fmt.Errorf("failed to set playercard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListPlayercards retrieves all selectable playercards
func (r *UserRepository) ListPlayercards(ctx context.Context) ([]domain.Playercard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT playercard_id, name, image_url FROM playercards ORDER BY playercard_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query playercards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Playercard
	for rows.Next() {
		var c domain.Playercard
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan playercard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playercards: %w", err)
	}
	return cards, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var playercard *int64
	if err := row.Scan(&u.ID, &u.Username, &u.Phone, &u.IsBot, &playercard, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if playercard != nil {
		id := domain.PlayercardID(*playercard)
		u.PlayercardID = &id
	}
	return &u, nil
}
