package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	GetUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	// LookupByPhone finds the account for a phone number. This is the whole
	// of authentication: no passwords, no tokens.
	LookupByPhone(ctx context.Context, phone string) (*domain.User, error)
	SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error
	ListPlayercards(ctx context.Context) ([]domain.Playercard, error)
}

// service implements the Service interface
type service struct {
	users repository.User
}

// NewService creates a new user service
func NewService(users repository.User) Service {
	return &service{users: users}
}

// GetUser returns a user by ID
func (s *service) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.users.GetUser(ctx, id)
}

// LookupByPhone returns the account registered to a phone number. The number
// is normalized to digits (plus an optional leading +) before the lookup so
// formatting differences don't produce spurious misses.
func (s *service) LookupByPhone(ctx context.Context, phone string) (*domain.User, error) {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("%w: phone number required", domain.ErrInvalidInput)
	}
	return s.users.GetUserByPhone(ctx, normalized)
}

// SetPlayercard updates the display card a user shows on the leaderboard
func (s *service) SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error {
	cards, err := s.users.ListPlayercards(ctx)
	if err != nil {
		return fmt.Errorf("failed to load playercards: %w", err)
	}
	for _, c := range cards {
		if c.ID == playercardID {
			return s.users.SetPlayercard(ctx, id, playercardID)
		}
	}
	return domain.ErrPlayercardNotFound
}

// ListPlayercards returns all selectable playercards
func (s *service) ListPlayercards(ctx context.Context) ([]domain.Playercard, error) {
	return s.users.ListPlayercards(ctx)
}

// NormalizePhone strips everything but digits, keeping one leading +.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "+" {
		return ""
	}
	return s
}
