package memory

import (
	"sync"

	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

// Store is the in-memory backing for local play and tests. The TxManager
// mutex doubles as the turn/purchase serializer.
type Store struct {
	mu       sync.Mutex
	state    campaign.State
	hasState bool
	planets  map[string]galaxy.Planet
}

func NewStore() *Store {
	return &Store{
		planets: make(map[string]galaxy.Planet),
	}
}

func (s *Store) SeedState(state campaign.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.hasState = true
}

func (s *Store) SeedPlanet(planet galaxy.Planet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planets[planet.ID] = planet
}
