package leaderboard

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// MockResultRepo
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) ReplaceFightResults(ctx context.Context, fightID domain.FightID, results []domain.PredictionResult) error {
	args := m.Called(ctx, fightID, results)
	return args.Error(0)
}

func (m *MockResultRepo) DeleteFightResults(ctx context.Context, fightID domain.FightID) error {
	args := m.Called(ctx, fightID)
	return args.Error(0)
}

func (m *MockResultRepo) ListResults(ctx context.Context, filter domain.ResultFilter) ([]domain.PredictionResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PredictionResult), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetUsersByIDs(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.UserID]domain.User), args.Error(1)
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) SetPlayercard(ctx context.Context, id domain.UserID, playercardID domain.PlayercardID) error {
	args := m.Called(ctx, id, playercardID)
	return args.Error(0)
}

func (m *MockUserRepo) ListPlayercards(ctx context.Context) ([]domain.Playercard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playercard), args.Error(1)
}

// MockEventWinnerRepo
type MockEventWinnerRepo struct {
	mock.Mock
}

func (m *MockEventWinnerRepo) ReplaceEventWinners(ctx context.Context, eventID domain.EventID, winners []domain.EventWinner) error {
	args := m.Called(ctx, eventID, winners)
	return args.Error(0)
}

func (m *MockEventWinnerRepo) ListEventWinners(ctx context.Context, year int) ([]domain.EventWinner, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventWinner), args.Error(1)
}
