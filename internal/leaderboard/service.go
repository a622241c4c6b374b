package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for leaderboard operations
type Service interface {
	GetLeaderboard(ctx context.Context, scope domain.LeaderboardScope) ([]domain.LeaderboardEntry, error)
}

// service implements the Service interface
type service struct {
	results repository.Result
	users   repository.User
	winners repository.EventWinner
}

// NewService creates a new leaderboard service
func NewService(results repository.Result, users repository.User, winners repository.EventWinner) Service {
	return &service{
		results: results,
		users:   users,
		winners: winners,
	}
}

// GetLeaderboard builds the ranked board for the given scope. Everything is
// recomputed from the store on every call; caching is the HTTP layer's
// problem, not ours.
func (s *service) GetLeaderboard(ctx context.Context, scope domain.LeaderboardScope) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	filter, err := filterForScope(scope)
	if err != nil {
		return nil, err
	}

	scoped, err := s.results.ListResults(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoped results: %w", err)
	}
	if len(scoped) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	// Streaks always run over full history, whatever the scope.
	history, err := s.results.ListResults(ctx, domain.ResultFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load result history: %w", err)
	}

	// Human crowns follow the same year restriction as the persisted winners.
	crownHistory := history
	if year := crownYear(scope); year != 0 {
		crownHistory = resultsInYear(history, year)
	}

	users, err := s.users.GetUsersByIDs(ctx, userIDs(history))
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	winners, err := s.winners.ListEventWinners(ctx, crownYear(scope))
	if err != nil {
		return nil, fmt.Errorf("failed to load event winners: %w", err)
	}

	entries := Build(scoped, history, crownHistory, users, winners)
	metrics.LeaderboardBuilds.WithLabelValues(string(scope.Type)).Inc()
	log.Debug("Leaderboard built", "scope", scope.Type, "entries", len(entries))
	return entries, nil
}

// filterForScope translates a leaderboard scope into a result filter.
func filterForScope(scope domain.LeaderboardScope) (domain.ResultFilter, error) {
	switch scope.Type {
	case domain.ScopeOverall:
		return domain.ResultFilter{}, nil
	case domain.ScopeEvent:
		if scope.EventID == 0 {
			return domain.ResultFilter{}, fmt.Errorf("%w: event scope requires an event id", domain.ErrInvalidInput)
		}
		return domain.ResultFilter{EventID: scope.EventID}, nil
	case domain.ScopeMonth:
		if scope.Year == 0 || scope.Month < 1 || scope.Month > 12 {
			return domain.ResultFilter{}, fmt.Errorf("%w: month scope requires year and month", domain.ErrInvalidInput)
		}
		since := time.Date(scope.Year, time.Month(scope.Month), 1, 0, 0, 0, 0, time.UTC)
		return domain.ResultFilter{Since: since, Until: since.AddDate(0, 1, 0)}, nil
	case domain.ScopeYear:
		if scope.Year == 0 {
			return domain.ResultFilter{}, fmt.Errorf("%w: year scope requires a year", domain.ErrInvalidInput)
		}
		since := time.Date(scope.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return domain.ResultFilter{Since: since, Until: since.AddDate(1, 0, 0)}, nil
	default:
		return domain.ResultFilter{}, fmt.Errorf("%w: unknown scope %q", domain.ErrInvalidInput, scope.Type)
	}
}

// crownYear restricts crown counts to the scope's year when one is set;
// zero means all-time.
func crownYear(scope domain.LeaderboardScope) int {
	switch scope.Type {
	case domain.ScopeMonth, domain.ScopeYear:
		return scope.Year
	}
	return 0
}

// resultsInYear keeps the result rows that landed in the given UTC year.
func resultsInYear(results []domain.PredictionResult, year int) []domain.PredictionResult {
	since := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := since.AddDate(1, 0, 0)

	var out []domain.PredictionResult
	for _, res := range results {
		if !res.CreatedAt.Before(since) && res.CreatedAt.Before(until) {
			out = append(out, res)
		}
	}
	return out
}

func userIDs(results []domain.PredictionResult) []domain.UserID {
	seen := make(map[domain.UserID]struct{})
	var ids []domain.UserID
	for _, res := range results {
		if _, ok := seen[res.UserID]; !ok {
			seen[res.UserID] = struct{}{}
			ids = append(ids, res.UserID)
		}
	}
	return ids
}
