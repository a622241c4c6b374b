package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	// GetUsersByIDs returns metadata for the given users keyed by ID; absent
	// users are simply missing from the map.
	GetUsersByIDs(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error
	ListPlayercards(ctx context.Context) ([]domain.Playercard, error)
}
