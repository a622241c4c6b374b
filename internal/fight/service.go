package fight

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service defines the interface for fight read operations
type Service interface {
	GetFight(ctx context.Context, id domain.FightID) (*domain.Fight, error)
	GetFightCard(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error)
}

// service implements the Service interface
type service struct {
	fights repository.Fight
	events repository.Event
}

// NewService creates a new fight service
func NewService(fights repository.Fight, events repository.Event) Service {
	return &service{fights: fights, events: events}
}

// GetFight returns the assembled view of a single fight
func (s *service) GetFight(ctx context.Context, id domain.FightID) (*domain.Fight, error) {
	state, err := s.fights.GetFightState(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.fights.GetFightEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	return Assemble(state, entries)
}

// GetFightCard returns the full card for an event in bout order. Fights with
// incomplete card data are skipped rather than failing the whole card.
func (s *service) GetFightCard(ctx context.Context, eventID domain.EventID) ([]domain.Fight, error) {
	log := logger.FromContext(ctx)

	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	states, err := s.fights.ListEventFightStates(ctx, eventID)
	if err != nil {
		return nil, err
	}

	entries, err := s.fights.ListEventEntries(ctx, eventID)
	if err != nil {
		return nil, err
	}

	byFight := make(map[domain.FightID][]domain.FightCardEntry)
	for _, e := range entries {
		byFight[e.FightID] = append(byFight[e.FightID], e)
	}

	card := make([]domain.Fight, 0, len(states))
	for i := range states {
		f, err := Assemble(&states[i], byFight[states[i].ID])
		if err != nil {
			log.Warn("Skipping fight with incomplete card data", "fight_id", states[i].ID, "error", err)
			continue
		}
		card = append(card, *f)
	}
	return card, nil
}

// Assemble folds the two raw card rows of a fight into its merged view.
// Pure: the state row is copied, not mutated.
func Assemble(state *domain.Fight, entries []domain.FightCardEntry) (*domain.Fight, error) {
	f := *state

	var haveRed, haveBlue bool
	for _, e := range entries {
		fighter := domain.Fighter{
			ID:     e.FighterID,
			Name:   e.FighterName,
			Record: e.Record,
			Odds:   e.Odds,
		}
		switch e.Corner {
		case domain.CornerRed:
			f.RedCorner = fighter
			haveRed = true
		case domain.CornerBlue:
			f.BlueCorner = fighter
			haveBlue = true
		}
	}

	if !haveRed || !haveBlue {
		return nil, fmt.Errorf("%w: fight %d has %d card entries", domain.ErrMissingParticipant, f.ID, len(entries))
	}
	return &f, nil
}
