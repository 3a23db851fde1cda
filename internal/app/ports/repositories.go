package ports

import (
	"context"

	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

// CampaignStateRepository persists the campaign aggregate as a single record.
// SaveWithVersion enforces optimistic concurrency: a mismatch between the
// stored version and expectedVersion yields ErrConflict.
type CampaignStateRepository interface {
	Get(ctx context.Context) (campaign.State, error)
	SaveWithVersion(ctx context.Context, state campaign.State, expectedVersion int64) error
}

// PlanetRepository is the planet provider the simulation core consumes.
type PlanetRepository interface {
	GetByID(ctx context.Context, planetID string) (galaxy.Planet, error)
	List(ctx context.Context) ([]galaxy.Planet, error)
	Save(ctx context.Context, planet galaxy.Planet) error
}

// ShopCatalog resolves shop item and stratagem definitions.
type ShopCatalog interface {
	Item(id string) (campaign.Item, bool)
	Items() []campaign.Item
}

// FactionCatalog answers faction existence checks.
type FactionCatalog interface {
	Exists(factionID string) bool
	IDs() []string
}

// ResourceCatalog enumerates valid resource ids. Display and validation only;
// unknown ids read as zero in wallets.
type ResourceCatalog interface {
	IDs() []string
}
