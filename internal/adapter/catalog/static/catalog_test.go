package staticcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"crusade/internal/domain/campaign"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if _, ok := c.Shop.Item(campaign.ItemDeployShip); !ok {
		t.Fatalf("expected deploy_ship in default shop table")
	}
	if len(c.Shop.Items()) != len(campaign.DefaultCatalog()) {
		t.Fatalf("default shop size mismatch: got=%d want=%d", len(c.Shop.Items()), len(campaign.DefaultCatalog()))
	}
	if !c.Factions.Exists("imperium") {
		t.Fatalf("expected imperium in default factions")
	}
	if c.Factions.Exists("tau") {
		t.Fatalf("unexpected faction tau")
	}
	if len(c.Resources.IDs()) == 0 {
		t.Fatalf("expected default resource ids")
	}
	if len(c.Planets()) == 0 {
		t.Fatalf("expected default starting map")
	}
}

func TestLoadGalaxyFile(t *testing.T) {
	doc := `
factions: [red, blue]
resources: [requisition, intel]
items:
  - id: deploy_ship
    name: Deploy Ship
    cost: {requisition: 2}
    target_required: true
    effect: none
planets:
  - id: alpha
    name: Alpha
    type: FORGE
    owner: red
    connections: [beta]
  - id: beta
    name: Beta
    type: AGRI
    connections: [alpha]
`
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write galaxy file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	item, ok := c.Shop.Item("deploy_ship")
	if !ok {
		t.Fatalf("expected deploy_ship")
	}
	if item.Cost["requisition"] != 2 {
		t.Fatalf("cost mismatch: got=%d want=2", item.Cost["requisition"])
	}
	if got := len(c.Shop.Items()); got != 1 {
		t.Fatalf("shop size mismatch: got=%d want=1", got)
	}
	if !c.Factions.Exists("red") || c.Factions.Exists("imperium") {
		t.Fatalf("faction set not taken from file")
	}
	if got := c.Resources.IDs(); len(got) != 2 || got[0] != "requisition" {
		t.Fatalf("resource ids not taken from file: %v", got)
	}

	planets := c.Planets()
	if len(planets) != 2 {
		t.Fatalf("planet count mismatch: got=%d want=2", len(planets))
	}
	if planets[0].OwnerID != "red" {
		t.Fatalf("owner mismatch: got=%q want=red", planets[0].OwnerID)
	}
}

func TestLoadGalaxyFileRejectsBadReferences(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown owner",
			doc: `
factions: [red]
planets:
  - id: alpha
    name: Alpha
    type: FORGE
    owner: green
`,
		},
		{
			name: "dangling connection",
			doc: `
planets:
  - id: alpha
    name: Alpha
    type: FORGE
    connections: [ghost]
`,
		},
		{
			name: "duplicate planet",
			doc: `
planets:
  - id: alpha
    name: Alpha
    type: FORGE
  - id: alpha
    name: Alpha Again
    type: HIVE
`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "galaxy.yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o600); err != nil {
				t.Fatalf("write galaxy file: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected load error")
			}
		})
	}
}
