package event

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/leaderboard"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for event operations
type Service interface {
	GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error)
	// ListEvents returns all events, optionally restricted to ones not yet
	// completed.
	ListEvents(ctx context.Context, upcomingOnly bool) ([]domain.Event, error)
	// FinalizeEvent resolves and persists the winner set for one event.
	// Re-running with unchanged data yields the same set; rows never pile up.
	FinalizeEvent(ctx context.Context, id domain.EventID) ([]domain.EventWinner, error)
	// BackfillWinners finalizes every completed event, isolating per-event
	// failures.
	BackfillWinners(ctx context.Context) (*domain.BackfillReport, error)
}

// service implements the Service interface
type service struct {
	events       repository.Event
	winners      repository.EventWinner
	leaderboards leaderboard.Service
}

// NewService creates a new event service
func NewService(events repository.Event, winners repository.EventWinner, leaderboards leaderboard.Service) Service {
	return &service{
		events:       events,
		winners:      winners,
		leaderboards: leaderboards,
	}
}

// GetEvent returns a single event
func (s *service) GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	return s.events.GetEvent(ctx, id)
}

// ListEvents returns all events, newest first
func (s *service) ListEvents(ctx context.Context, upcomingOnly bool) ([]domain.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if !upcomingOnly {
		return events, nil
	}

	upcoming := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !e.IsComplete {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, nil
}

// FinalizeEvent computes the tied-top-score winner set for an event and
// persists it, replacing any prior set in one transaction. Ties produce
// multiple winners; a tie at zero points still wins ("everyone guessed
// wrong" is a completed contest). An event with no results is a no-op.
func (s *service) FinalizeEvent(ctx context.Context, id domain.EventID) ([]domain.EventWinner, error) {
	log := logger.FromContext(ctx)

	if _, err := s.events.GetEvent(ctx, id); err != nil {
		return nil, err
	}

	board, err := s.leaderboards.GetLeaderboard(ctx, domain.LeaderboardScope{
		Type:    domain.ScopeEvent,
		EventID: id,
	})
	if err != nil {
		// Leave existing winner rows untouched on any computation failure.
		return nil, fmt.Errorf("failed to build event leaderboard: %w", err)
	}

	winners := ResolveWinners(id, board)
	if len(winners) == 0 {
		log.Info(LogMsgNoWinners, "event_id", id)
		return winners, nil
	}

	if err := s.winners.ReplaceEventWinners(ctx, id, winners); err != nil {
		return nil, fmt.Errorf("failed to persist winners: %w", err)
	}

	metrics.EventsFinalized.Inc()
	log.Info(LogMsgEventFinalized, "event_id", id, "winners", len(winners))
	return winners, nil
}

// BackfillWinners re-runs finalization over every completed event. One bad
// event does not abort the batch; it lands in the report with its reason.
func (s *service) BackfillWinners(ctx context.Context) (*domain.BackfillReport, error) {
	log := logger.FromContext(ctx)

	events, err := s.events.ListCompletedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed events: %w", err)
	}

	report := &domain.BackfillReport{Skipped: []domain.SkippedEvent{}}
	for _, e := range events {
		winners, err := s.FinalizeEvent(ctx, e.ID)
		if err != nil {
			log.Warn(LogMsgBackfillSkip, "event_id", e.ID, "error", err)
			report.Skipped = append(report.Skipped, domain.SkippedEvent{EventID: e.ID, Reason: err.Error()})
			continue
		}
		report.Processed++
		report.Winners += len(winners)
	}

	log.Info(LogMsgBackfillDone, "processed", report.Processed, "skipped", len(report.Skipped))
	return report, nil
}

// ResolveWinners picks every entry tied with the top total from an
// event-scoped leaderboard. The board arrives sorted, so the first entry
// holds the maximum by construction. Pure.
func ResolveWinners(eventID domain.EventID, board []domain.LeaderboardEntry) []domain.EventWinner {
	if len(board) == 0 {
		return []domain.EventWinner{}
	}

	top := board[0].TotalPoints
	winners := make([]domain.EventWinner, 0, 1)
	for _, entry := range board {
		if entry.TotalPoints != top {
			break
		}
		winners = append(winners, domain.EventWinner{
			EventID: eventID,
			UserID:  entry.UserID,
			Points:  entry.TotalPoints,
		})
	}
	return winners
}
