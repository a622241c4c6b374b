package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// MockEventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) GetEvent(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, upcomingOnly bool) ([]domain.Event, error) {
	args := m.Called(ctx, upcomingOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventService) FinalizeEvent(ctx context.Context, id domain.EventID) ([]domain.EventWinner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventWinner), args.Error(1)
}

func (m *MockEventService) BackfillWinners(ctx context.Context) (*domain.BackfillReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackfillReport), args.Error(1)
}

// MockFightService
type MockFightService struct {
	mock.Mock
}

func (m *MockFightService) GetFight(ctx context.Context, id domain.FightID) (*domain.Fight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fight), args.Error(1)
}

func (m *MockFightService) GetFightCard(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fight), args.Error(1)
}

// MockPredictionService
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) SubmitPrediction(ctx context.Context, fightID domain.FightID, userID domain.UserID, fighterID domain.FighterID, odds *int) (*domain.Prediction, error) {
	args := m.Called(ctx, fightID, userID, fighterID, odds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

// MockScoringService
type MockScoringService struct {
	mock.Mock
}

func (m *MockScoringService) SetFightWinner(ctx context.Context, fightID domain.FightID, winnerID *domain.FighterID) ([]domain.PredictionResult, error) {
	args := m.Called(ctx, fightID, winnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PredictionResult), args.Error(1)
}

func (m *MockScoringService) CancelFight(ctx context.Context, fightID domain.FightID) error {
	args := m.Called(ctx, fightID)
	return args.Error(0)
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

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) LookupByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error {
	args := m.Called(ctx, id, playercardID)
	return args.Error(0)
}

func (m *MockUserService) ListPlayercards(ctx context.Context) ([]domain.Playercard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playercard), args.Error(1)
}
