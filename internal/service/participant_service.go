package service

import (
	"fmt"
	"sort"

	"github.com/tmusat/eurovote/internal/models"
	"github.com/tmusat/eurovote/internal/store"
)

// ParticipantService serves the contest lineup: a read-mostly collection
// populated once per edition at startup.
type ParticipantService struct {
	store *store.Store[models.Participant]
}

// NewParticipantService creates a ParticipantService over the given store.
func NewParticipantService(s *store.Store[models.Participant]) *ParticipantService {
	return &ParticipantService{store: s}
}

// All returns every participant in insertion order.
func (s *ParticipantService) All() []models.Participant {
	return s.store.All()
}

// ByRound returns the round's participants sorted ascending by turn. The
// sort is stable, so ties keep their insertion order. An empty round is
// ErrNotFound: the route contract promises a lineup.
func (s *ParticipantService) ByRound(roundNum int) ([]models.Participant, error) {
	if roundNum < 1 || roundNum > 3 {
		return nil, fmt.Errorf("%w: round_num must be in [1,3], got %d", ErrValidation, roundNum)
	}
	result := s.store.Filter(func(p models.Participant) bool {
		return p.RoundNum == roundNum
	})
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: round %d has no participants", ErrNotFound, roundNum)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Turn < result[j].Turn
	})
	return result, nil
}

// ByCountry returns the single participant for a country. Zero matches is
// ErrNotFound; more than one is ErrConflict, a distinct signal for seed
// data violating the one-country-per-year invariant.
func (s *ParticipantService) ByCountry(country string) (models.Participant, error) {
	result := s.store.Filter(func(p models.Participant) bool {
		return p.Country == country
	})
	switch len(result) {
	case 0:
		return models.Participant{}, fmt.Errorf("%w: country %q", ErrNotFound, country)
	case 1:
		return result[0], nil
	default:
		return models.Participant{}, fmt.Errorf("%w: country %q has %d participants", ErrConflict, country, len(result))
	}
}
