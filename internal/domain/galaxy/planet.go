package galaxy

type PlanetType string

const (
	PlanetForge     PlanetType = "FORGE"
	PlanetHive      PlanetType = "HIVE"
	PlanetAgri      PlanetType = "AGRI"
	PlanetMining    PlanetType = "MINING"
	PlanetShrine    PlanetType = "SHRINE"
	PlanetDeath     PlanetType = "DEATH"
	PlanetBarren    PlanetType = "BARREN"
	PlanetCursed    PlanetType = "CURSED"
	PlanetWarTorn   PlanetType = "WAR_TORN"
	PlanetCorrupted PlanetType = "CORRUPTED"
)

type BattleStatus string

const (
	BattleNone    BattleStatus = "none"
	BattleOngoing BattleStatus = "ongoing"
)

type Ship struct {
	ID        string `json:"id"`
	FactionID string `json:"faction_id"`
	Name      string `json:"name"`
}

// Modifiers adjust a planet's per-turn harvest. Composition order is fixed:
// flat bonuses add onto the base yield, the percent multiplier applies next,
// doubling applies last.
type Modifiers struct {
	FlatBonus    map[string]int `json:"flat_bonus,omitempty"`
	YieldPercent int            `json:"yield_percent,omitempty"`
	DoubleYield  bool           `json:"double_yield,omitempty"`
}

// Planet is a node on the galaxy map. Connections hold the static undirected
// edge set; wormholes and blockades are derived from events at query time and
// never stored here.
type Planet struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Type         PlanetType     `json:"type"`
	OwnerID      string         `json:"owner_id,omitempty"`
	Resources    map[string]int `json:"resources,omitempty"`
	Connections  []string       `json:"connections"`
	ValueOne     int            `json:"value_one"`
	ValueTwo     int            `json:"value_two"`
	BattleStatus BattleStatus   `json:"battle_status,omitempty"`
	Destroyed    bool           `json:"destroyed,omitempty"`
	Modifiers    Modifiers      `json:"modifiers,omitempty"`
	Ships        []Ship         `json:"ships,omitempty"`
	Version      int64          `json:"version"`
}

func (p *Planet) SetOwner(factionID string) {
	p.OwnerID = factionID
}

func (p *Planet) SetBattleStatus(status BattleStatus) {
	if status == "" {
		status = BattleNone
	}
	p.BattleStatus = status
}

// AdjustValueOne shifts the strategic value, clamped at zero.
func (p *Planet) AdjustValueOne(delta int) {
	p.ValueOne += delta
	if p.ValueOne < 0 {
		p.ValueOne = 0
	}
}

// AdjustValueTwo shifts the defense value, clamped at zero.
func (p *Planet) AdjustValueTwo(delta int) {
	p.ValueTwo += delta
	if p.ValueTwo < 0 {
		p.ValueTwo = 0
	}
}

func (p *Planet) AddShip(ship Ship) {
	p.Ships = append(p.Ships, ship)
}

// Destroy marks the planet dead: no owner, no ships, no battle.
func (p *Planet) Destroy() {
	p.Destroyed = true
	p.OwnerID = ""
	p.Ships = nil
	p.BattleStatus = BattleNone
}

func (p *Planet) ConnectedTo(other string) bool {
	for _, id := range p.Connections {
		if id == other {
			return true
		}
	}
	return false
}
