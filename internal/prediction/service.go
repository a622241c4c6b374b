package prediction

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/fight"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for prediction operations
type Service interface {
	// SubmitPrediction records a user's pick for a fight, capturing the
	// fighter's odds at submission time. A non-nil odds value (the line the
	// client saw) takes precedence over the card's current line.
	// Re-submitting replaces the earlier pick.
	SubmitPrediction(ctx context.Context, fightID domain.FightID, userID domain.UserID, fighterID domain.FighterID, odds *int) (*domain.Prediction, error)
	ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error)
}

// service implements the Service interface
type service struct {
	predictions repository.Prediction
	fights      fight.Service
	users       repository.User
}

// NewService creates a new prediction service
func NewService(predictions repository.Prediction, fights fight.Service, users repository.User) Service {
	return &service{
		predictions: predictions,
		fights:      fights,
		users:       users,
	}
}

// SubmitPrediction validates the pick against the fight card and upserts it.
// Odds are frozen into the row here; later line moves never change a stored
// pick.
func (s *service) SubmitPrediction(ctx context.Context, fightID domain.FightID, userID domain.UserID, fighterID domain.FighterID, odds *int) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	f, err := s.fights.GetFight(ctx, fightID)
	if err != nil {
		return nil, err
	}
	if f.IsCanceled {
		return nil, domain.ErrFightCanceled
	}
	if f.IsCompleted {
		return nil, domain.ErrFightCompleted
	}
	if !f.HasParticipant(fighterID) {
		return nil, fmt.Errorf("%w: fighter %d is not on fight %d", domain.ErrInvalidInput, fighterID, fightID)
	}

	if odds == nil {
		odds = f.OddsFor(fighterID)
	}

	p := &domain.Prediction{
		FightID:   fightID,
		EventID:   f.EventID,
		UserID:    userID,
		FighterID: fighterID,
		Odds:      odds,
	}

	if err := s.predictions.UpsertPrediction(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	metrics.PredictionsSubmitted.Inc()
	log.Info(LogMsgPredictionRecorded, "fight_id", fightID, "user_id", userID, "fighter_id", fighterID)
	return p, nil
}

// ListUserPredictions returns a user's picks, optionally scoped to one event
func (s *service) ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.predictions.ListUserPredictions(ctx, userID, eventID)
}
