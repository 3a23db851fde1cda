package memory

import (
	"context"
	"sort"

	"crusade/internal/app/ports"
	"crusade/internal/domain/galaxy"
)

type PlanetRepo struct {
	store *Store
}

func NewPlanetRepo(store *Store) PlanetRepo {
	return PlanetRepo{store: store}
}

func (r PlanetRepo) GetByID(_ context.Context, planetID string) (galaxy.Planet, error) {
	planet, ok := r.store.planets[planetID]
	if !ok {
		return galaxy.Planet{}, ports.ErrNotFound
	}
	return planet, nil
}

func (r PlanetRepo) List(_ context.Context) ([]galaxy.Planet, error) {
	out := make([]galaxy.Planet, 0, len(r.store.planets))
	for _, planet := range r.store.planets {
		out = append(out, planet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r PlanetRepo) Save(_ context.Context, planet galaxy.Planet) error {
	r.store.planets[planet.ID] = planet
	return nil
}
