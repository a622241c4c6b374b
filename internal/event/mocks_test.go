package event

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) ListCompletedEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockWinnerRepo
type MockWinnerRepo struct {
	mock.Mock
}

func (m *MockWinnerRepo) ReplaceEventWinners(ctx context.Context, eventID domain.EventID, winners []domain.EventWinner) error {
	args := m.Called(ctx, eventID, winners)
	return args.Error(0)
}

func (m *MockWinnerRepo) ListEventWinners(ctx context.Context, year int) ([]domain.EventWinner, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventWinner), args.Error(1)
}

// MockLeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, scope domain.LeaderboardScope) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
