package scoring

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/fight"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for scoring operations
type Service interface {
	// SetFightWinner resolves a fight and replaces every prediction result
	// for it. Passing nil clears the result instead.
	SetFightWinner(ctx context.Context, fightID domain.FightID, winnerID *domain.FighterID) ([]domain.PredictionResult, error)
	CancelFight(ctx context.Context, fightID domain.FightID) error
}

// service implements the Service interface
type service struct {
	fights      repository.Fight
	predictions repository.Prediction
	results     repository.Result
}

// NewService creates a new scoring service
func NewService(fights repository.Fight, predictions repository.Prediction, results repository.Result) Service {
	return &service{
		fights:      fights,
		predictions: predictions,
		results:     results,
	}
}

// SetFightWinner records the winner of a fight and rebuilds the derived
// results for every pick on it. Results are a pure function of
// (predictions × winner); they are replaced in bulk, never patched.
func (s *service) SetFightWinner(ctx context.Context, fightID domain.FightID, winnerID *domain.FighterID) ([]domain.PredictionResult, error) {
	log := logger.FromContext(ctx)

	if winnerID == nil {
		return nil, s.clearFightWinner(ctx, fightID)
	}

	f, err := s.loadFight(ctx, fightID)
	if err != nil {
		return nil, err
	}
	if f.IsCanceled {
		return nil, domain.ErrFightCanceled
	}
	if !f.HasParticipant(*winnerID) {
		return nil, fmt.Errorf("%w: fighter %d", domain.ErrUnknownWinner, *winnerID)
	}

	predictions, err := s.predictions.ListFightPredictions(ctx, fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	results := Score(f.EventID, *winnerID, predictions)

	if err := s.fights.SetFightResult(ctx, fightID, winnerID); err != nil {
		return nil, err
	}
	if err := s.results.ReplaceFightResults(ctx, fightID, results); err != nil {
		return nil, fmt.Errorf("failed to replace results: %w", err)
	}

	metrics.FightsScored.Inc()
	log.Info(LogMsgWinnerSet, "fight_id", fightID, "winner_id", *winnerID, "results", len(results))
	return results, nil
}

// clearFightWinner resets a fight to the unresolved state. All derived rows
// are deleted: "no result yet" is not the same as "zero points".
func (s *service) clearFightWinner(ctx context.Context, fightID domain.FightID) error {
	log := logger.FromContext(ctx)

	if _, err := s.loadFight(ctx, fightID); err != nil {
		return err
	}

	if err := s.fights.SetFightResult(ctx, fightID, nil); err != nil {
		return err
	}
	if err := s.results.DeleteFightResults(ctx, fightID); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}

	log.Info(LogMsgWinnerCleared, "fight_id", fightID)
	return nil
}

// CancelFight marks a fight canceled, clearing any winner. Stale result
// cleanup is best-effort: losing it is a recoverable inconsistency, not
// corruption, so a cleanup failure is logged rather than failing the request.
func (s *service) CancelFight(ctx context.Context, fightID domain.FightID) error {
	log := logger.FromContext(ctx)

	if err := s.fights.CancelFight(ctx, fightID); err != nil {
		return err
	}

	if err := s.results.DeleteFightResults(ctx, fightID); err != nil {
		log.Warn(LogMsgStaleResultCleanup, "fight_id", fightID, "error", err)
	}

	metrics.FightsCanceled.Inc()
	log.Info(LogMsgFightCanceled, "fight_id", fightID)
	return nil
}

// loadFight returns the assembled fight, failing with ErrMissingParticipant
// before any write when the card is incomplete.
func (s *service) loadFight(ctx context.Context, fightID domain.FightID) (*domain.Fight, error) {
	state, err := s.fights.GetFightState(ctx, fightID)
	if err != nil {
		return nil, err
	}
	entries, err := s.fights.GetFightEntries(ctx, fightID)
	if err != nil {
		return nil, err
	}
	return fight.Assemble(state, entries)
}

// Score derives the result row for every prediction on a fight. Pure.
func Score(eventID domain.EventID, winnerID domain.FighterID, predictions []domain.Prediction) []domain.PredictionResult {
	results := make([]domain.PredictionResult, 0, len(predictions))
	for _, p := range predictions {
		correct := p.FighterID == winnerID
		points := 0
		if correct {
			points = PointsForOdds(p.Odds)
		}
		results = append(results, domain.PredictionResult{
			FightID:            p.FightID,
			UserID:             p.UserID,
			EventID:            eventID,
			PredictedCorrectly: correct,
			Points:             points,
		})
	}
	return results
}
