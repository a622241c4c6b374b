package prediction

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
)

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
