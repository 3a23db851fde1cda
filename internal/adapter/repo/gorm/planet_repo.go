package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crusade/internal/adapter/repo/gorm/model"
	"crusade/internal/app/ports"
	"crusade/internal/domain/galaxy"
)

type PlanetRepo struct {
	db *gorm.DB
}

func NewPlanetRepo(db *gorm.DB) PlanetRepo {
	return PlanetRepo{db: db}
}

func (r PlanetRepo) GetByID(ctx context.Context, planetID string) (galaxy.Planet, error) {
	var m model.Planet
	if err := getDBFromCtx(ctx, r.db).Where("planet_id = ?", planetID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return galaxy.Planet{}, ports.ErrNotFound
		}
		return galaxy.Planet{}, err
	}
	return decodePlanet(m)
}

func (r PlanetRepo) List(ctx context.Context) ([]galaxy.Planet, error) {
	rows := []model.Planet{}
	err := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "planet_id"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]galaxy.Planet, 0, len(rows))
	for _, row := range rows {
		planet, err := decodePlanet(row)
		if err != nil {
			return nil, err
		}
		out = append(out, planet)
	}
	return out, nil
}

func (r PlanetRepo) Save(ctx context.Context, planet galaxy.Planet) error {
	m, err := encodePlanet(planet)
	if err != nil {
		return err
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "planet_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func encodePlanet(p galaxy.Planet) (model.Planet, error) {
	resources, err := json.Marshal(p.Resources)
	if err != nil {
		return model.Planet{}, fmt.Errorf("encode resources: %w", err)
	}
	connections, err := json.Marshal(p.Connections)
	if err != nil {
		return model.Planet{}, fmt.Errorf("encode connections: %w", err)
	}
	modifiers, err := json.Marshal(p.Modifiers)
	if err != nil {
		return model.Planet{}, fmt.Errorf("encode modifiers: %w", err)
	}
	ships, err := json.Marshal(p.Ships)
	if err != nil {
		return model.Planet{}, fmt.Errorf("encode ships: %w", err)
	}
	return model.Planet{
		PlanetID:     p.ID,
		Name:         p.Name,
		Type:         string(p.Type),
		OwnerID:      p.OwnerID,
		Resources:    resources,
		Connections:  connections,
		ValueOne:     p.ValueOne,
		ValueTwo:     p.ValueTwo,
		BattleStatus: string(p.BattleStatus),
		Destroyed:    p.Destroyed,
		Modifiers:    modifiers,
		Ships:        ships,
		Version:      p.Version,
	}, nil
}

func decodePlanet(m model.Planet) (galaxy.Planet, error) {
	p := galaxy.Planet{
		ID:           m.PlanetID,
		Name:         m.Name,
		Type:         galaxy.PlanetType(m.Type),
		OwnerID:      m.OwnerID,
		ValueOne:     m.ValueOne,
		ValueTwo:     m.ValueTwo,
		BattleStatus: galaxy.BattleStatus(m.BattleStatus),
		Destroyed:    m.Destroyed,
		Version:      m.Version,
	}
	if len(m.Resources) > 0 {
		if err := json.Unmarshal(m.Resources, &p.Resources); err != nil {
			return galaxy.Planet{}, fmt.Errorf("decode resources: %w", err)
		}
	}
	if len(m.Connections) > 0 {
		if err := json.Unmarshal(m.Connections, &p.Connections); err != nil {
			return galaxy.Planet{}, fmt.Errorf("decode connections: %w", err)
		}
	}
	if len(m.Modifiers) > 0 {
		if err := json.Unmarshal(m.Modifiers, &p.Modifiers); err != nil {
			return galaxy.Planet{}, fmt.Errorf("decode modifiers: %w", err)
		}
	}
	if len(m.Ships) > 0 {
		if err := json.Unmarshal(m.Ships, &p.Ships); err != nil {
			return galaxy.Planet{}, fmt.Errorf("decode ships: %w", err)
		}
	}
	return p, nil
}
