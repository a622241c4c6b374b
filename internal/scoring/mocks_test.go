package scoring

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// MockFightRepo
type MockFightRepo struct {
	mock.Mock
}

func (m *MockFightRepo) GetFightState(ctx context.Context, id domain.FightID) (*domain.Fight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fight), args.Error(1)
}

func (m *MockFightRepo) ListEventFightStates(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fight), args.Error(1)
}

func (m *MockFightRepo) GetFightEntries(ctx context.Context, id domain.FightID) ([]domain.FightCardEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FightCardEntry), args.Error(1)
}

func (m *MockFightRepo) ListEventEntries(ctx context.Context, eventID domain.EventID) ([]domain.FightCardEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FightCardEntry), args.Error(1)
}

func (m *MockFightRepo) SetFightResult(ctx context.Context, id domain.FightID, winner *domain.FighterID) error {
	args := m.Called(ctx, id, winner)
	return args.Error(0)
}

func (m *MockFightRepo) CancelFight(ctx context.Context, id domain.FightID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPredictionRepo
type MockPredictionRepo struct {
	mock.Mock
}

func (m *MockPredictionRepo) UpsertPrediction(ctx context.Context, p *domain.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPredictionRepo) ListFightPredictions(ctx context.Context, fightID domain.FightID) ([]domain.Prediction, error) {
	args := m.Called(ctx, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepo) ListUserPredictions(ctx context.Context, userID domain.UserID, eventID domain.EventID) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

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
