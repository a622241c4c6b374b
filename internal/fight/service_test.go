package fight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
)

func intPtr(v int) *int { return &v }

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

func entries(fightID domain.FightID) []domain.FightCardEntry {
	return []domain.FightCardEntry{
		{FightID: fightID, EventID: 5, Corner: domain.CornerRed, FighterID: 7, FighterName: "Red Fighter", Record: "20-3", Odds: intPtr(150)},
		{FightID: fightID, EventID: 5, Corner: domain.CornerBlue, FighterID: 8, FighterName: "Blue Fighter", Record: "18-5", Odds: intPtr(-150)},
	}
}

func TestAssemble_FoldsBothCorners(t *testing.T) {
	state := &domain.Fight{ID: 1, EventID: 5, BoutOrder: 3}

	f, err := Assemble(state, entries(1))

	require.NoError(t, err)
	assert.Equal(t, domain.FighterID(7), f.RedCorner.ID)
	assert.Equal(t, "Red Fighter", f.RedCorner.Name)
	assert.Equal(t, "20-3", f.RedCorner.Record)
	assert.Equal(t, domain.FighterID(8), f.BlueCorner.ID)
	assert.Equal(t, 3, f.BoutOrder)

	// Input state must not be mutated
	assert.Zero(t, state.RedCorner.ID)
}

func TestAssemble_MissingCorner(t *testing.T) {
	state := &domain.Fight{ID: 1, EventID: 5}

	f, err := Assemble(state, entries(1)[:1])

	assert.ErrorIs(t, err, domain.ErrMissingParticipant)
	assert.Nil(t, f)
}

func TestAssemble_NoEntries(t *testing.T) {
	state := &domain.Fight{ID: 1, EventID: 5}

	f, err := Assemble(state, nil)

	assert.ErrorIs(t, err, domain.ErrMissingParticipant)
	assert.Nil(t, f)
}

func TestGetFight(t *testing.T) {
	fights := new(MockFightRepo)
	events := new(MockEventRepo)
	s := NewService(fights, events)

	ctx := context.Background()
	fights.On("GetFightState", ctx, domain.FightID(1)).Return(&domain.Fight{ID: 1, EventID: 5}, nil)
	fights.On("GetFightEntries", ctx, domain.FightID(1)).Return(entries(1), nil)

	f, err := s.GetFight(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.FighterID(7), f.RedCorner.ID)
}

func TestGetFightCard_SkipsIncompleteFights(t *testing.T) {
	fights := new(MockFightRepo)
	events := new(MockEventRepo)
	s := NewService(fights, events)

	ctx := context.Background()
	eventID := domain.EventID(5)

	events.On("GetEvent", ctx, eventID).Return(&domain.Event{ID: eventID}, nil)
	fights.On("ListEventFightStates", ctx, eventID).Return([]domain.Fight{
		{ID: 1, EventID: eventID, BoutOrder: 1},
		{ID: 2, EventID: eventID, BoutOrder: 2},
	}, nil)
	// Fight 2 has only one corner recorded; it is skipped, not fatal.
	all := append(entries(1), domain.FightCardEntry{
		FightID: 2, EventID: eventID, Corner: domain.CornerRed, FighterID: 9, FighterName: "Lone Fighter",
	})
	fights.On("ListEventEntries", ctx, eventID).Return(all, nil)

	card, err := s.GetFightCard(ctx, eventID)

	require.NoError(t, err)
	require.Len(t, card, 1)
	assert.Equal(t, domain.FightID(1), card[0].ID)
}

func TestGetFightCard_UnknownEvent(t *testing.T) {
	fights := new(MockFightRepo)
	events := new(MockEventRepo)
	s := NewService(fights, events)

	ctx := context.Background()
	events.On("GetEvent", ctx, domain.EventID(404)).Return(nil, domain.ErrEventNotFound)

	card, err := s.GetFightCard(ctx, 404)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Nil(t, card)
	fights.AssertNotCalled(t, "ListEventFightStates", mock.Anything, mock.Anything)
}
