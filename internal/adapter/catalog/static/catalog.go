// Package staticcatalog loads campaign definitions from a galaxy file. The
// file is plain YAML and covers factions, resources, the shop table, and the
// starting map. Every section is optional; omitted sections fall back to the
// built-in defaults.
package staticcatalog

import (
	"fmt"
	"os"
	"sort"

	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"

	"gopkg.in/yaml.v3"
)

type planetDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Owner       string   `yaml:"owner,omitempty"`
	ValueOne    int      `yaml:"value_one"`
	ValueTwo    int      `yaml:"value_two"`
	Connections []string `yaml:"connections"`
}

type galaxyDoc struct {
	Factions  []string        `yaml:"factions"`
	Resources []string        `yaml:"resources"`
	Items     []campaign.Item `yaml:"items"`
	Planets   []planetDoc     `yaml:"planets"`
}

// Catalog is the loaded galaxy file. Shop lookups go through the Shop view,
// faction checks through Factions, resource ids through Resources.
type Catalog struct {
	Shop      ShopTable
	Factions  FactionSet
	Resources ResourceSet
	planets   []galaxy.Planet
}

type ShopTable struct {
	byID  map[string]campaign.Item
	order []string
}

func (t ShopTable) Item(id string) (campaign.Item, bool) {
	item, ok := t.byID[id]
	return item, ok
}

func (t ShopTable) Items() []campaign.Item {
	out := make([]campaign.Item, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

type FactionSet struct {
	ids map[string]struct{}
}

func (s FactionSet) Exists(factionID string) bool {
	_, ok := s.ids[factionID]
	return ok
}

func (s FactionSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

type ResourceSet struct {
	ids []string
}

func (s ResourceSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Planets returns deep copies of the starting map, for seeding an empty
// planet repository.
func (c *Catalog) Planets() []galaxy.Planet {
	out := make([]galaxy.Planet, len(c.planets))
	for i, p := range c.planets {
		conns := make([]string, len(p.Connections))
		copy(conns, p.Connections)
		p.Connections = conns
		out[i] = p
	}
	return out
}

// Load reads the galaxy file at path. Missing sections keep the defaults.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read galaxy file: %w", err)
	}
	var doc galaxyDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse galaxy file: %w", err)
	}
	return build(doc)
}

// Default is the built-in catalog used when no galaxy file is configured.
func Default() *Catalog {
	c, err := build(galaxyDoc{})
	if err != nil {
		panic(err)
	}
	return c
}

func build(doc galaxyDoc) (*Catalog, error) {
	items := doc.Items
	if len(items) == 0 {
		items = campaign.DefaultCatalog()
	}
	shop := ShopTable{byID: make(map[string]campaign.Item, len(items))}
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("shop item with empty id")
		}
		if _, dup := shop.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate shop item %q", item.ID)
		}
		shop.byID[item.ID] = item
		shop.order = append(shop.order, item.ID)
	}

	factionIDs := doc.Factions
	if len(factionIDs) == 0 {
		factionIDs = defaultFactions
	}
	factions := FactionSet{ids: make(map[string]struct{}, len(factionIDs))}
	for _, id := range factionIDs {
		factions.ids[id] = struct{}{}
	}

	resourceIDs := doc.Resources
	if len(resourceIDs) == 0 {
		resourceIDs = galaxy.ResourceIDs()
	}

	planetDocs := doc.Planets
	if len(planetDocs) == 0 {
		planetDocs = defaultPlanets
	}
	planets := make([]galaxy.Planet, 0, len(planetDocs))
	seen := make(map[string]struct{}, len(planetDocs))
	for _, pd := range planetDocs {
		if pd.ID == "" {
			return nil, fmt.Errorf("planet with empty id")
		}
		if _, dup := seen[pd.ID]; dup {
			return nil, fmt.Errorf("duplicate planet %q", pd.ID)
		}
		seen[pd.ID] = struct{}{}
		if pd.Owner != "" && !factions.Exists(pd.Owner) {
			return nil, fmt.Errorf("planet %q owned by unknown faction %q", pd.ID, pd.Owner)
		}
		planets = append(planets, galaxy.Planet{
			ID:          pd.ID,
			Name:        pd.Name,
			Type:        galaxy.PlanetType(pd.Type),
			OwnerID:     pd.Owner,
			ValueOne:    pd.ValueOne,
			ValueTwo:    pd.ValueTwo,
			Connections: pd.Connections,
			Version:     1,
		})
	}
	for _, p := range planets {
		for _, conn := range p.Connections {
			if _, ok := seen[conn]; !ok {
				return nil, fmt.Errorf("planet %q connects to unknown planet %q", p.ID, conn)
			}
		}
	}

	return &Catalog{
		Shop:      shop,
		Factions:  factions,
		Resources: ResourceSet{ids: resourceIDs},
		planets:   planets,
	}, nil
}

var defaultFactions = []string{"imperium", "orks", "chaos", "eldar"}

var defaultPlanets = []planetDoc{
	{ID: "holy-terra", Name: "Holy Terra", Type: "SHRINE", Owner: "imperium", ValueOne: 5, ValueTwo: 3, Connections: []string{"mars-forge", "agri-secundus"}},
	{ID: "mars-forge", Name: "Mars Forge", Type: "FORGE", Owner: "imperium", ValueOne: 3, ValueTwo: 2, Connections: []string{"holy-terra", "hive-tertium"}},
	{ID: "agri-secundus", Name: "Agri Secundus", Type: "AGRI", ValueOne: 1, ValueTwo: 1, Connections: []string{"holy-terra", "mining-rim"}},
	{ID: "hive-tertium", Name: "Hive Tertium", Type: "HIVE", ValueOne: 2, ValueTwo: 2, Connections: []string{"mars-forge", "mining-rim"}},
	{ID: "mining-rim", Name: "Mining Rim", Type: "MINING", Owner: "orks", ValueOne: 2, ValueTwo: 1, Connections: []string{"agri-secundus", "hive-tertium", "dead-hollow"}},
	{ID: "dead-hollow", Name: "Dead Hollow", Type: "DEATH", ValueOne: 0, ValueTwo: 0, Connections: []string{"mining-rim"}},
}
